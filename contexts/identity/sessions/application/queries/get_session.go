package queries

import (
	"context"

	"janus/contexts/identity/sessions/domain/entities"
	domainerrors "janus/contexts/identity/sessions/domain/errors"
	"janus/contexts/identity/sessions/ports"
)

// GetSessionUseCase loads a session by ID.
type GetSessionUseCase struct {
	Repository ports.Repository
}

func (u GetSessionUseCase) Execute(ctx context.Context, sessionID int64) (entities.Session, error) {
	session, found, err := u.Repository.FindSession(ctx, sessionID)
	if err != nil {
		return entities.Session{}, err
	}
	if !found {
		return entities.Session{}, domainerrors.ErrSessionNotFound
	}
	return session, nil
}
