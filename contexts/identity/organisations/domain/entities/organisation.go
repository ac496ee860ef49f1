package entities

import (
	"time"

	"janus/contexts/identity/organisations/domain/valueobjects"
)

// Organisation groups users under one name.
type Organisation struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Member is one user's membership in an organisation. The pair
// (organisation, user) is the identity; a user joins an organisation at
// most once.
type Member struct {
	OrganisationID int64                   `json:"organisation_id"`
	UserID         int64                   `json:"user_id"`
	Role           valueobjects.MemberRole `json:"role"`
	IsDefault      bool                    `json:"is_default"`

	JoinedAt time.Time `json:"joined_at"`
}

// Membership pairs an organisation with the caller's member record, the
// shape list queries return.
type Membership struct {
	Organisation Organisation `json:"organisation"`
	Member       Member       `json:"member"`
}
