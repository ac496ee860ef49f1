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

// AddMemberCommand adds a user to an existing organisation.
type AddMemberCommand struct {
	OrganisationID int64
	UserID         int64
	Role           string
	IsDefault      bool
}

type AddMemberUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u AddMemberUseCase) Execute(ctx context.Context, cmd AddMemberCommand) error {
	logger := application.ResolveLogger(u.Logger)

	role, err := valueobjects.ParseMemberRole(cmd.Role)
	if err != nil {
		return err
	}

	_, found, err := u.Repository.FindOrganisation(ctx, cmd.OrganisationID)
	if err != nil {
		return err
	}
	if !found {
		return domainerrors.ErrOrganisationNotFound
	}

	err = u.Repository.AddMember(ctx, entities.Member{
		OrganisationID: cmd.OrganisationID,
		UserID:         cmd.UserID,
		Role:           role,
		IsDefault:      cmd.IsDefault,
	})
	if err != nil {
		return err
	}

	logger.Info("organisation member added",
		"event", "identity_organisation_member_added",
		"module", "identity/organisations",
		"organisationId", cmd.OrganisationID,
		"userId", cmd.UserID,
		"role", string(role),
	)
	return nil
}
