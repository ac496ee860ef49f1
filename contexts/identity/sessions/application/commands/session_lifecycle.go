package commands

import (
	"context"
	"log/slog"
	"time"

	application "janus/contexts/identity/sessions/application"
	domainerrors "janus/contexts/identity/sessions/domain/errors"
	"janus/contexts/identity/sessions/domain/valueobjects"
	"janus/contexts/identity/sessions/ports"
)

// RevokeSessionUseCase revokes a session and every token issued under it.
// The orchestrator drives this when a presented hash matches a revoked,
// non-head token (possible replay).
type RevokeSessionUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (u RevokeSessionUseCase) Execute(ctx context.Context, sessionID int64) error {
	logger := application.ResolveLogger(u.Logger)
	now := u.Clock.Now()

	revoked, err := u.Repository.RevokeSessionTokens(ctx, sessionID, now)
	if err != nil {
		return err
	}
	updated, err := u.Repository.SetSessionStatus(ctx, sessionID, valueobjects.SessionStatusRevoked, nil)
	if err != nil {
		return err
	}
	if !updated {
		return domainerrors.ErrSessionNotFound
	}

	logger.Info("session revoked",
		"event", "sessions_revoked",
		"module", "identity/sessions",
		"session_id", sessionID,
		"tokens_revoked", revoked,
	)
	return nil
}

// TerminateSessionUseCase ends a session normally (sign-out).
type TerminateSessionUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (u TerminateSessionUseCase) Execute(ctx context.Context, sessionID int64) error {
	logger := application.ResolveLogger(u.Logger)
	now := u.Clock.Now()

	if _, err := u.Repository.RevokeSessionTokens(ctx, sessionID, now); err != nil {
		return err
	}
	updated, err := u.Repository.SetSessionStatus(ctx, sessionID, valueobjects.SessionStatusTerminated, &now)
	if err != nil {
		return err
	}
	if !updated {
		return domainerrors.ErrSessionNotFound
	}

	logger.Info("session terminated",
		"event", "sessions_terminated",
		"module", "identity/sessions",
		"session_id", sessionID,
	)
	return nil
}

// ElevateSessionUseCase grants a time-boxed privileged window after step-up
// authentication, independent of overall expiry.
type ElevateSessionUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (u ElevateSessionUseCase) Execute(ctx context.Context, sessionID int64, until time.Time) error {
	logger := application.ResolveLogger(u.Logger)
	now := u.Clock.Now()

	if !until.After(now) {
		return domainerrors.ErrExpiryInPast
	}

	session, found, err := u.Repository.FindSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if !found {
		return domainerrors.ErrSessionNotFound
	}
	if !session.ActiveAt(now) {
		return domainerrors.ErrSessionNotActive
	}

	if _, err := u.Repository.ElevateSession(ctx, sessionID, until); err != nil {
		return err
	}

	logger.Info("session elevated",
		"event", "sessions_elevated",
		"module", "identity/sessions",
		"session_id", sessionID,
	)
	return nil
}

// TouchSessionUseCase records the liveness heartbeat.
type TouchSessionUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
}

func (u TouchSessionUseCase) Execute(ctx context.Context, sessionID int64) error {
	updated, err := u.Repository.TouchSession(ctx, sessionID, u.Clock.Now())
	if err != nil {
		return err
	}
	if !updated {
		return domainerrors.ErrSessionNotFound
	}
	return nil
}
