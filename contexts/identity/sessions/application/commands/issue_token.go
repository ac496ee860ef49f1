package commands

import (
	"context"
	"log/slog"
	"time"

	application "janus/contexts/identity/sessions/application"
	"janus/contexts/identity/sessions/domain/entities"
	domainerrors "janus/contexts/identity/sessions/domain/errors"
	"janus/contexts/identity/sessions/ports"
)

// IssueTokenCommand issues a per-application token for a live session. The
// secret itself never reaches the ledger; callers hash it first.
type IssueTokenCommand struct {
	SessionID     int64
	ApplicationID int32
	TokenHash     string
	ExpiresAt     time.Time

	IPAddress *string
	IPCountry *string
}

// IssueTokenUseCase rotates the (session, application) pair: the previous
// live token, if any, is revoked in the same transaction and linked as the
// new token's predecessor.
type IssueTokenUseCase struct {
	Repository  ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u IssueTokenUseCase) Execute(ctx context.Context, cmd IssueTokenCommand) (entities.Token, error) {
	logger := application.ResolveLogger(u.Logger)
	now := u.Clock.Now()

	if cmd.TokenHash == "" {
		return entities.Token{}, domainerrors.ErrTokenHashRequired
	}
	if !cmd.ExpiresAt.After(now) {
		return entities.Token{}, domainerrors.ErrExpiryInPast
	}

	session, found, err := u.Repository.FindSession(ctx, cmd.SessionID)
	if err != nil {
		return entities.Token{}, err
	}
	if !found {
		return entities.Token{}, domainerrors.ErrSessionNotFound
	}
	if !session.ActiveAt(now) {
		return entities.Token{}, domainerrors.ErrSessionNotActive
	}

	id, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Token{}, err
	}

	token, err := u.Repository.RotateToken(ctx, entities.Token{
		ID:            id,
		SessionID:     cmd.SessionID,
		ApplicationID: cmd.ApplicationID,
		TokenHash:     cmd.TokenHash,
		CreatedAt:     now,
		ExpiresAt:     cmd.ExpiresAt,
		IPAddress:     cmd.IPAddress,
		IPCountry:     cmd.IPCountry,
	})
	if err != nil {
		return entities.Token{}, err
	}

	logger.Info("token issued",
		"event", "sessions_token_issued",
		"module", "identity/sessions",
		"session_id", cmd.SessionID,
		"application_id", cmd.ApplicationID,
		"rotated", token.PreviousTokenID != nil,
	)
	return token, nil
}
