package queries

import (
	"context"
	"log/slog"

	"janus/contexts/identity/directory/domain/entities"
	domainerrors "janus/contexts/identity/directory/domain/errors"
	"janus/contexts/identity/directory/domain/valueobjects"
	"janus/contexts/identity/directory/ports"
)

// GetUserUseCase resolves a polymorphic identifier to the matching user.
type GetUserUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

// Execute classifies the identifier and runs the matching lookup. Absence
// surfaces as ErrUserNotFound; Lookup is the error-free variant.
func (u GetUserUseCase) Execute(ctx context.Context, identifier string) (entities.User, error) {
	user, found, err := u.Lookup(ctx, valueobjects.ClassifyIdentifier(identifier))
	if err != nil {
		return entities.User{}, err
	}
	if !found {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return user, nil
}

func (u GetUserUseCase) Lookup(ctx context.Context, id valueobjects.Identifier) (entities.User, bool, error) {
	return u.Repository.FindUser(ctx, id)
}
