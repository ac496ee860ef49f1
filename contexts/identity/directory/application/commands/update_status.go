package commands

import (
	"context"
	"log/slog"

	application "janus/contexts/identity/directory/application"
	domainerrors "janus/contexts/identity/directory/domain/errors"
	"janus/contexts/identity/directory/domain/valueobjects"
	"janus/contexts/identity/directory/ports"
)

// UpdateStatusUseCase resolves an identifier and moves the account along the
// status state machine. Reapplying the current status is an idempotent no-op.
type UpdateStatusUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (u UpdateStatusUseCase) Execute(ctx context.Context, identifier string, status string) error {
	logger := application.ResolveLogger(u.Logger)

	next, err := valueobjects.ParseUserStatus(status)
	if err != nil {
		return err
	}

	id := valueobjects.ClassifyIdentifier(identifier)
	user, found, err := u.Repository.FindUser(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domainerrors.ErrUserNotFound
	}
	if user.Status == next {
		return nil
	}
	if !user.Status.CanTransitionTo(next) {
		return domainerrors.ErrInvalidStatusTransition
	}

	affected, err := u.Repository.UpdateStatus(ctx, id, next, u.Clock.Now().UTC())
	if err != nil {
		return err
	}
	if affected == 0 {
		return domainerrors.ErrUserNotFound
	}

	logger.Info("user status updated",
		"event", "identity_user_status_updated",
		"module", "identity/directory",
		"user_id", user.ID,
		"from", string(user.Status),
		"to", string(next),
	)
	return nil
}
