package commands

import (
	"context"
	"log/slog"
	"strings"

	application "janus/contexts/identity/directory/application"
	"janus/contexts/identity/directory/domain/entities"
	domainerrors "janus/contexts/identity/directory/domain/errors"
	"janus/contexts/identity/directory/domain/valueobjects"
	"janus/contexts/identity/directory/ports"
)

// AddEmailUseCase attaches a secondary e-mail to an existing user.
type AddEmailUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u AddEmailUseCase) Execute(ctx context.Context, identifier string, address string, verified bool) (entities.Email, error) {
	logger := application.ResolveLogger(u.Logger)

	address = strings.ToLower(strings.TrimSpace(address))
	if address == "" || !strings.Contains(address, "@") {
		return entities.Email{}, domainerrors.ErrEmailRequired
	}

	user, found, err := u.Repository.FindUser(ctx, valueobjects.ClassifyIdentifier(identifier))
	if err != nil {
		return entities.Email{}, err
	}
	if !found {
		return entities.Email{}, domainerrors.ErrUserNotFound
	}

	email, err := u.Repository.AddEmail(ctx, user.ID, address, verified)
	if err != nil {
		return entities.Email{}, err
	}

	logger.Info("email added",
		"event", "identity_email_added",
		"module", "identity/directory",
		"user_id", user.ID,
	)
	return email, nil
}

// VerifyEmailUseCase marks an e-mail as verified.
type VerifyEmailUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u VerifyEmailUseCase) Execute(ctx context.Context, address string) error {
	logger := application.ResolveLogger(u.Logger)

	address = strings.ToLower(strings.TrimSpace(address))
	updated, err := u.Repository.MarkEmailVerified(ctx, address)
	if err != nil {
		return err
	}
	if !updated {
		return domainerrors.ErrEmailNotFound
	}

	logger.Info("email verified",
		"event", "identity_email_verified",
		"module", "identity/directory",
	)
	return nil
}

// SetPrimaryEmailUseCase promotes one of a user's e-mails to primary.
// The single-primary rule is application-level discipline: the repository
// demotes the previous primary and promotes the new one in one transaction.
type SetPrimaryEmailUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u SetPrimaryEmailUseCase) Execute(ctx context.Context, identifier string, address string) error {
	logger := application.ResolveLogger(u.Logger)

	address = strings.ToLower(strings.TrimSpace(address))
	user, found, err := u.Repository.FindUser(ctx, valueobjects.ClassifyIdentifier(identifier))
	if err != nil {
		return err
	}
	if !found {
		return domainerrors.ErrUserNotFound
	}

	if err := u.Repository.PromotePrimaryEmail(ctx, user.ID, address); err != nil {
		return err
	}

	logger.Info("primary email changed",
		"event", "identity_primary_email_changed",
		"module", "identity/directory",
		"user_id", user.ID,
	)
	return nil
}
