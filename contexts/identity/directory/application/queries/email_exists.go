package queries

import (
	"context"
	"strings"

	"janus/contexts/identity/directory/ports"
)

// EmailExistsUseCase reports whether an address is already bound to any user.
type EmailExistsUseCase struct {
	Repository ports.Repository
}

func (u EmailExistsUseCase) Execute(ctx context.Context, address string) (bool, error) {
	return u.Repository.EmailExists(ctx, strings.ToLower(strings.TrimSpace(address)))
}
