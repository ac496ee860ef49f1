package ports

import (
	"context"
	"time"

	"janus/contexts/identity/sessions/domain/entities"
	"janus/contexts/identity/sessions/domain/valueobjects"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts UUID generation for sign-in events and tokens.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// Repository is the persistence boundary of the session ledger. Sign-in
// events are append-only: no update operation exists by design.
type Repository interface {
	InsertSignInEvent(ctx context.Context, event entities.SignInEvent) error
	FindSignInEvent(ctx context.Context, id string) (entities.SignInEvent, bool, error)

	InsertSession(ctx context.Context, session entities.Session) (entities.Session, error)
	FindSession(ctx context.Context, id int64) (entities.Session, bool, error)
	SetSessionStatus(ctx context.Context, id int64, status valueobjects.SessionStatus, terminatedAt *time.Time) (bool, error)
	TouchSession(ctx context.Context, id int64, at time.Time) (bool, error)
	ElevateSession(ctx context.Context, id int64, until time.Time) (bool, error)

	// RotateToken revokes the live token for the (session, application)
	// pair, if any, and inserts the new token linked to it, atomically.
	RotateToken(ctx context.Context, token entities.Token) (entities.Token, error)
	FindTokenByHash(ctx context.Context, hash string) (entities.Token, bool, error)
	LiveToken(ctx context.Context, sessionID int64, applicationID int32) (entities.Token, bool, error)
	PairTokens(ctx context.Context, sessionID int64, applicationID int32) ([]entities.Token, error)
	RevokeSessionTokens(ctx context.Context, sessionID int64, at time.Time) (int64, error)
}
