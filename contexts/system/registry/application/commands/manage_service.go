package commands

import (
	"context"
	"log/slog"

	application "janus/contexts/system/registry/application"
	"janus/contexts/system/registry/domain/entities"
	domainerrors "janus/contexts/system/registry/domain/errors"
	"janus/contexts/system/registry/ports"
)

// CreateServiceCommand registers a new service catalog entry.
type CreateServiceCommand struct {
	Name        string
	DisplayName *string
	Description *string
	SubDomain   string
	HomePageURL *string
	LogoURL     *string
	IsActive    bool
}

type CreateServiceUseCase struct {
	Repository ports.Repository
	Catalog    *application.Catalog
	Notifier   ports.ReloadNotifier
	Logger     *slog.Logger
}

func (u CreateServiceUseCase) Execute(ctx context.Context, cmd CreateServiceCommand) (entities.Service, error) {
	logger := application.ResolveLogger(u.Logger)

	if cmd.Name == "" {
		return entities.Service{}, domainerrors.ErrNameRequired
	}
	if cmd.SubDomain == "" {
		return entities.Service{}, domainerrors.ErrSubDomainRequired
	}

	created, err := u.Repository.CreateService(ctx, entities.Service{
		Name:        cmd.Name,
		DisplayName: cmd.DisplayName,
		Description: cmd.Description,
		SubDomain:   cmd.SubDomain,
		HomePageURL: cmd.HomePageURL,
		LogoURL:     cmd.LogoURL,
		IsActive:    cmd.IsActive,
	})
	if err != nil {
		return entities.Service{}, err
	}

	logger.Info("service registered",
		"event", "registry_service_created",
		"module", "system/registry",
		"serviceId", created.ID,
		"name", created.Name,
	)
	if err := refresh(ctx, u.Catalog, u.Notifier, u.Logger); err != nil {
		return entities.Service{}, err
	}
	return created, nil
}

type UpdateServiceCommand struct {
	ID          int32
	Name        string
	DisplayName *string
	Description *string
	SubDomain   string
	HomePageURL *string
	LogoURL     *string
	IsActive    bool
}

type UpdateServiceUseCase struct {
	Repository ports.Repository
	Catalog    *application.Catalog
	Notifier   ports.ReloadNotifier
	Logger     *slog.Logger
}

func (u UpdateServiceUseCase) Execute(ctx context.Context, cmd UpdateServiceCommand) error {
	if cmd.Name == "" {
		return domainerrors.ErrNameRequired
	}
	if cmd.SubDomain == "" {
		return domainerrors.ErrSubDomainRequired
	}

	updated, err := u.Repository.UpdateService(ctx, entities.Service{
		ID:          cmd.ID,
		Name:        cmd.Name,
		DisplayName: cmd.DisplayName,
		Description: cmd.Description,
		SubDomain:   cmd.SubDomain,
		HomePageURL: cmd.HomePageURL,
		LogoURL:     cmd.LogoURL,
		IsActive:    cmd.IsActive,
	})
	if err != nil {
		return err
	}
	if !updated {
		return domainerrors.ErrServiceNotFound
	}
	return refresh(ctx, u.Catalog, u.Notifier, u.Logger)
}

type DeleteServiceUseCase struct {
	Repository ports.Repository
	Catalog    *application.Catalog
	Notifier   ports.ReloadNotifier
	Logger     *slog.Logger
}

func (u DeleteServiceUseCase) Execute(ctx context.Context, id int32) error {
	logger := application.ResolveLogger(u.Logger)

	deleted, err := u.Repository.DeleteService(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domainerrors.ErrServiceNotFound
	}

	logger.Info("service deleted",
		"event", "registry_service_deleted",
		"module", "system/registry",
		"serviceId", id,
	)
	return refresh(ctx, u.Catalog, u.Notifier, u.Logger)
}
