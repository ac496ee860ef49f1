package queries

import (
	"context"
	"log/slog"

	application "janus/contexts/identity/sessions/application"
	"janus/contexts/identity/sessions/domain/entities"
	domainerrors "janus/contexts/identity/sessions/domain/errors"
	"janus/contexts/identity/sessions/ports"
)

// TokenCheck is the verdict for a presented token hash.
type TokenCheck struct {
	Token entities.Token `json:"token"`

	// Live: unrevoked and unexpired.
	Live bool `json:"live"`

	// Replayed: the hash matched a superseded link of the rotation chain,
	// a token some later issuance replaced. A head revoked only by sign-out
	// does not count. The orchestrator's policy decides whether this
	// escalates to session-wide revocation.
	Replayed bool `json:"replayed"`
}

// CheckTokenUseCase resolves a presented hash against the ledger.
type CheckTokenUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (u CheckTokenUseCase) Execute(ctx context.Context, tokenHash string) (TokenCheck, error) {
	logger := application.ResolveLogger(u.Logger)

	token, found, err := u.Repository.FindTokenByHash(ctx, tokenHash)
	if err != nil {
		return TokenCheck{}, err
	}
	if !found {
		return TokenCheck{}, domainerrors.ErrTokenNotFound
	}

	now := u.Clock.Now()
	check := TokenCheck{
		Token: token,
		Live:  token.LiveAt(now),
	}
	if token.RevokedAt != nil {
		superseded, err := u.superseded(ctx, token)
		if err != nil {
			return TokenCheck{}, err
		}
		check.Replayed = superseded
	}
	if check.Replayed {
		logger.Warn("superseded token presented",
			"event", "sessions_token_replay_suspected",
			"module", "identity/sessions",
			"session_id", token.SessionID,
			"application_id", token.ApplicationID,
		)
	}
	return check, nil
}

// superseded reports whether a later issuance replaced this token. A head
// revoked by sign-out or session revocation is not a replay: only presenting
// a link that rotation already left behind is.
func (u CheckTokenUseCase) superseded(ctx context.Context, token entities.Token) (bool, error) {
	chain, err := u.Repository.PairTokens(ctx, token.SessionID, token.ApplicationID)
	if err != nil {
		return false, err
	}
	for _, other := range chain {
		if other.PreviousTokenID != nil && *other.PreviousTokenID == token.ID {
			return true, nil
		}
	}
	return false, nil
}
