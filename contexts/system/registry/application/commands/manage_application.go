package commands

import (
	"context"
	"log/slog"

	application "janus/contexts/system/registry/application"
	"janus/contexts/system/registry/domain/entities"
	domainerrors "janus/contexts/system/registry/domain/errors"
	"janus/contexts/system/registry/ports"
)

// CreateApplicationCommand registers a new application catalog entry.
type CreateApplicationCommand struct {
	Name        string
	DisplayName *string
	Description *string
	SubDomain   string
	HomePageURL *string
	LogoURL     *string
	IsActive    bool
}

type CreateApplicationUseCase struct {
	Repository ports.Repository
	Catalog    *application.Catalog
	Notifier   ports.ReloadNotifier
	Logger     *slog.Logger
}

func (u CreateApplicationUseCase) Execute(ctx context.Context, cmd CreateApplicationCommand) (entities.Application, error) {
	logger := application.ResolveLogger(u.Logger)

	if cmd.Name == "" {
		return entities.Application{}, domainerrors.ErrNameRequired
	}
	if cmd.SubDomain == "" {
		return entities.Application{}, domainerrors.ErrSubDomainRequired
	}

	created, err := u.Repository.CreateApplication(ctx, entities.Application{
		Name:        cmd.Name,
		DisplayName: cmd.DisplayName,
		Description: cmd.Description,
		SubDomain:   cmd.SubDomain,
		HomePageURL: cmd.HomePageURL,
		LogoURL:     cmd.LogoURL,
		IsActive:    cmd.IsActive,
	})
	if err != nil {
		return entities.Application{}, err
	}

	logger.Info("application registered",
		"event", "registry_application_created",
		"module", "system/registry",
		"applicationId", created.ID,
		"name", created.Name,
	)
	if err := refresh(ctx, u.Catalog, u.Notifier, u.Logger); err != nil {
		return entities.Application{}, err
	}
	return created, nil
}

// UpdateApplicationCommand replaces the mutable descriptor fields of an entry.
type UpdateApplicationCommand struct {
	ID          int32
	Name        string
	DisplayName *string
	Description *string
	SubDomain   string
	HomePageURL *string
	LogoURL     *string
	IsActive    bool
}

type UpdateApplicationUseCase struct {
	Repository ports.Repository
	Catalog    *application.Catalog
	Notifier   ports.ReloadNotifier
	Logger     *slog.Logger
}

func (u UpdateApplicationUseCase) Execute(ctx context.Context, cmd UpdateApplicationCommand) error {
	if cmd.Name == "" {
		return domainerrors.ErrNameRequired
	}
	if cmd.SubDomain == "" {
		return domainerrors.ErrSubDomainRequired
	}

	updated, err := u.Repository.UpdateApplication(ctx, entities.Application{
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
		return domainerrors.ErrApplicationNotFound
	}
	return refresh(ctx, u.Catalog, u.Notifier, u.Logger)
}

type DeleteApplicationUseCase struct {
	Repository ports.Repository
	Catalog    *application.Catalog
	Notifier   ports.ReloadNotifier
	Logger     *slog.Logger
}

func (u DeleteApplicationUseCase) Execute(ctx context.Context, id int32) error {
	logger := application.ResolveLogger(u.Logger)

	deleted, err := u.Repository.DeleteApplication(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domainerrors.ErrApplicationNotFound
	}

	logger.Info("application deleted",
		"event", "registry_application_deleted",
		"module", "system/registry",
		"applicationId", id,
	)
	return refresh(ctx, u.Catalog, u.Notifier, u.Logger)
}
