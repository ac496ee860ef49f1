package commands

import (
	"context"
	"log/slog"
	"time"

	application "janus/contexts/identity/sessions/application"
	"janus/contexts/identity/sessions/domain/entities"
	domainerrors "janus/contexts/identity/sessions/domain/errors"
	"janus/contexts/identity/sessions/domain/valueobjects"
	"janus/contexts/identity/sessions/ports"
)

// OpenSessionCommand creates a session from a successful sign-in event.
type OpenSessionCommand struct {
	UserID        int64
	SignInEventID string
	ExpiresAt     time.Time
	ElevatedUntil *time.Time
}

// OpenSessionUseCase validates the creation evidence and inserts the session.
type OpenSessionUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (u OpenSessionUseCase) Execute(ctx context.Context, cmd OpenSessionCommand) (entities.Session, error) {
	logger := application.ResolveLogger(u.Logger)
	now := u.Clock.Now()

	if !cmd.ExpiresAt.After(now) {
		return entities.Session{}, domainerrors.ErrExpiryInPast
	}

	event, found, err := u.Repository.FindSignInEvent(ctx, cmd.SignInEventID)
	if err != nil {
		return entities.Session{}, err
	}
	if !found {
		return entities.Session{}, domainerrors.ErrSignInEventNotFound
	}
	if event.UserID != cmd.UserID {
		return entities.Session{}, domainerrors.ErrSignInEventUserMismatch
	}
	if event.Status != valueobjects.SignInStatusSuccess {
		return entities.Session{}, domainerrors.ErrSignInNotSuccessful
	}

	session, err := u.Repository.InsertSession(ctx, entities.Session{
		UserID:        cmd.UserID,
		SignInEventID: cmd.SignInEventID,
		Status:        valueobjects.SessionStatusActive,
		ExpiresAt:     cmd.ExpiresAt,
		CreatedAt:     now,
		LastUsedAt:    now,
		ElevatedUntil: cmd.ElevatedUntil,
	})
	if err != nil {
		return entities.Session{}, err
	}

	logger.Info("session opened",
		"event", "sessions_opened",
		"module", "identity/sessions",
		"session_id", session.ID,
		"user_id", cmd.UserID,
	)
	return session, nil
}
