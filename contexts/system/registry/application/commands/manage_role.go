package commands

import (
	"context"
	"log/slog"

	application "janus/contexts/system/registry/application"
	"janus/contexts/system/registry/domain/entities"
	domainerrors "janus/contexts/system/registry/domain/errors"
	"janus/contexts/system/registry/ports"
)

// AddRoleCommand attaches a role to an application or service. Role names
// are unique per owner.
type AddRoleCommand struct {
	OwnerID     int32
	Name        string
	Description *string
}

type AddApplicationRoleUseCase struct {
	Repository ports.Repository
	Catalog    *application.Catalog
	Notifier   ports.ReloadNotifier
	Logger     *slog.Logger
}

func (u AddApplicationRoleUseCase) Execute(ctx context.Context, cmd AddRoleCommand) (entities.Role, error) {
	if cmd.Name == "" {
		return entities.Role{}, domainerrors.ErrNameRequired
	}

	role, err := u.Repository.AddApplicationRole(ctx, cmd.OwnerID, entities.Role{
		Name:        cmd.Name,
		Description: cmd.Description,
	})
	if err != nil {
		return entities.Role{}, err
	}
	if err := refresh(ctx, u.Catalog, u.Notifier, u.Logger); err != nil {
		return entities.Role{}, err
	}
	return role, nil
}

type AddServiceRoleUseCase struct {
	Repository ports.Repository
	Catalog    *application.Catalog
	Notifier   ports.ReloadNotifier
	Logger     *slog.Logger
}

func (u AddServiceRoleUseCase) Execute(ctx context.Context, cmd AddRoleCommand) (entities.Role, error) {
	if cmd.Name == "" {
		return entities.Role{}, domainerrors.ErrNameRequired
	}

	role, err := u.Repository.AddServiceRole(ctx, cmd.OwnerID, entities.Role{
		Name:        cmd.Name,
		Description: cmd.Description,
	})
	if err != nil {
		return entities.Role{}, err
	}
	if err := refresh(ctx, u.Catalog, u.Notifier, u.Logger); err != nil {
		return entities.Role{}, err
	}
	return role, nil
}

type DeleteApplicationRoleUseCase struct {
	Repository ports.Repository
	Catalog    *application.Catalog
	Notifier   ports.ReloadNotifier
	Logger     *slog.Logger
}

func (u DeleteApplicationRoleUseCase) Execute(ctx context.Context, applicationID int32, roleName string) error {
	deleted, err := u.Repository.DeleteApplicationRole(ctx, applicationID, roleName)
	if err != nil {
		return err
	}
	if !deleted {
		return domainerrors.ErrRoleNotFound
	}
	return refresh(ctx, u.Catalog, u.Notifier, u.Logger)
}

type DeleteServiceRoleUseCase struct {
	Repository ports.Repository
	Catalog    *application.Catalog
	Notifier   ports.ReloadNotifier
	Logger     *slog.Logger
}

func (u DeleteServiceRoleUseCase) Execute(ctx context.Context, serviceID int32, roleName string) error {
	deleted, err := u.Repository.DeleteServiceRole(ctx, serviceID, roleName)
	if err != nil {
		return err
	}
	if !deleted {
		return domainerrors.ErrRoleNotFound
	}
	return refresh(ctx, u.Catalog, u.Notifier, u.Logger)
}
