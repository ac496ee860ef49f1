package queries

import (
	"context"

	"janus/contexts/identity/organisations/domain/entities"
	"janus/contexts/identity/organisations/ports"
)

// ListUserOrganisationsUseCase returns every organisation the user belongs
// to, with the membership record attached. An empty result is not an error.
type ListUserOrganisationsUseCase struct {
	Repository ports.Repository
}

func (u ListUserOrganisationsUseCase) Execute(ctx context.Context, userID int64) ([]entities.Membership, error) {
	return u.Repository.ListUserMemberships(ctx, userID)
}
