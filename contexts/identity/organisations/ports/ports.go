package ports

import (
	"context"

	"janus/contexts/identity/organisations/domain/entities"
)

// Repository is the persistence boundary of the organisations context.
// CreateOrganisation inserts the organisation and its OWNER membership in
// one unit of work.
type Repository interface {
	CreateOrganisation(ctx context.Context, organisation entities.Organisation, owner entities.Member) (entities.Organisation, error)
	FindOrganisation(ctx context.Context, id int64) (entities.Organisation, bool, error)
	AddMember(ctx context.Context, member entities.Member) error
	ListUserMemberships(ctx context.Context, userID int64) ([]entities.Membership, error)
}
