package commands

import (
	"context"
	"log/slog"

	application "janus/contexts/identity/organisations/application"
	"janus/contexts/identity/organisations/domain/entities"
	domainerrors "janus/contexts/identity/organisations/domain/errors"
	"janus/contexts/identity/organisations/domain/valueobjects"
	"janus/contexts/identity/organisations/ports"
)

// CreateOrganisationCommand creates an organisation owned by the given user.
type CreateOrganisationCommand struct {
	Name        string
	OwnerUserID int64

	// IsDefault marks the owner's membership as their default organisation.
	IsDefault bool
}

type CreateOrganisationUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u CreateOrganisationUseCase) Execute(ctx context.Context, cmd CreateOrganisationCommand) (entities.Organisation, error) {
	logger := application.ResolveLogger(u.Logger)

	if cmd.Name == "" {
		return entities.Organisation{}, domainerrors.ErrNameRequired
	}

	organisation, err := u.Repository.CreateOrganisation(ctx,
		entities.Organisation{Name: cmd.Name},
		entities.Member{
			UserID:    cmd.OwnerUserID,
			Role:      valueobjects.MemberRoleOwner,
			IsDefault: cmd.IsDefault,
		},
	)
	if err != nil {
		return entities.Organisation{}, err
	}

	logger.Info("organisation created",
		"event", "identity_organisation_created",
		"module", "identity/organisations",
		"organisationId", organisation.ID,
		"ownerUserId", cmd.OwnerUserID,
	)
	return organisation, nil
}
