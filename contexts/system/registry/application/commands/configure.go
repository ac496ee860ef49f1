package commands

import (
	"context"
	"log/slog"

	application "janus/contexts/system/registry/application"
	"janus/contexts/system/registry/domain/entities"
	domainerrors "janus/contexts/system/registry/domain/errors"
	"janus/contexts/system/registry/ports"
)

// UpsertConfigurationCommand sets a configuration entry for its owner,
// creating or replacing the value for the name.
type UpsertConfigurationCommand struct {
	OwnerID int32
	Name    string
	Value   string
}

type UpsertApplicationConfigurationUseCase struct {
	Repository ports.Repository
	Catalog    *application.Catalog
	Notifier   ports.ReloadNotifier
	Logger     *slog.Logger
}

func (u UpsertApplicationConfigurationUseCase) Execute(ctx context.Context, cmd UpsertConfigurationCommand) error {
	if cmd.Name == "" {
		return domainerrors.ErrNameRequired
	}
	err := u.Repository.UpsertApplicationConfiguration(ctx, cmd.OwnerID, entities.Configuration{
		Name:  cmd.Name,
		Value: cmd.Value,
	})
	if err != nil {
		return err
	}
	return refresh(ctx, u.Catalog, u.Notifier, u.Logger)
}

type UpsertServiceConfigurationUseCase struct {
	Repository ports.Repository
	Catalog    *application.Catalog
	Notifier   ports.ReloadNotifier
	Logger     *slog.Logger
}

func (u UpsertServiceConfigurationUseCase) Execute(ctx context.Context, cmd UpsertConfigurationCommand) error {
	if cmd.Name == "" {
		return domainerrors.ErrNameRequired
	}
	err := u.Repository.UpsertServiceConfiguration(ctx, cmd.OwnerID, entities.Configuration{
		Name:  cmd.Name,
		Value: cmd.Value,
	})
	if err != nil {
		return err
	}
	return refresh(ctx, u.Catalog, u.Notifier, u.Logger)
}
