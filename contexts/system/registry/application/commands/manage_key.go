package commands

import (
	"context"
	"log/slog"

	application "janus/contexts/system/registry/application"
	"janus/contexts/system/registry/domain/entities"
	domainerrors "janus/contexts/system/registry/domain/errors"
	"janus/contexts/system/registry/domain/valueobjects"
	"janus/contexts/system/registry/ports"
)

// AddKeyCommand attaches a public key to an application or service.
type AddKeyCommand struct {
	OwnerID   int32
	Name      string
	PublicKey string
	Algorithm string
	IsDefault bool
}

func (cmd AddKeyCommand) toEntity() (entities.Key, error) {
	if cmd.Name == "" {
		return entities.Key{}, domainerrors.ErrNameRequired
	}
	if cmd.PublicKey == "" {
		return entities.Key{}, domainerrors.ErrPublicKeyRequired
	}
	algorithm, err := valueobjects.ParsePublicKeyAlgorithm(cmd.Algorithm)
	if err != nil {
		return entities.Key{}, err
	}
	return entities.Key{
		Name:      cmd.Name,
		PublicKey: cmd.PublicKey,
		Algorithm: algorithm,
		IsDefault: cmd.IsDefault,
	}, nil
}

type AddApplicationKeyUseCase struct {
	Repository ports.Repository
	Catalog    *application.Catalog
	Notifier   ports.ReloadNotifier
	Logger     *slog.Logger
}

func (u AddApplicationKeyUseCase) Execute(ctx context.Context, cmd AddKeyCommand) (entities.Key, error) {
	key, err := cmd.toEntity()
	if err != nil {
		return entities.Key{}, err
	}

	created, err := u.Repository.AddApplicationKey(ctx, cmd.OwnerID, key)
	if err != nil {
		return entities.Key{}, err
	}
	if err := refresh(ctx, u.Catalog, u.Notifier, u.Logger); err != nil {
		return entities.Key{}, err
	}
	return created, nil
}

type AddServiceKeyUseCase struct {
	Repository ports.Repository
	Catalog    *application.Catalog
	Notifier   ports.ReloadNotifier
	Logger     *slog.Logger
}

func (u AddServiceKeyUseCase) Execute(ctx context.Context, cmd AddKeyCommand) (entities.Key, error) {
	key, err := cmd.toEntity()
	if err != nil {
		return entities.Key{}, err
	}

	created, err := u.Repository.AddServiceKey(ctx, cmd.OwnerID, key)
	if err != nil {
		return entities.Key{}, err
	}
	if err := refresh(ctx, u.Catalog, u.Notifier, u.Logger); err != nil {
		return entities.Key{}, err
	}
	return created, nil
}
