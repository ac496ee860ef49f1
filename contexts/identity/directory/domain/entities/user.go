package entities

import (
	"time"

	"janus/contexts/identity/directory/domain/valueobjects"
)

// User is the canonical account record. The numeric ID is immutable; the
// account is never hard-deleted in normal operation (CLOSED is the terminal
// soft-delete state).
type User struct {
	ID        int64                   `json:"id"`
	Username  *string                 `json:"username,omitempty"`
	Status    valueobjects.UserStatus `json:"status"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// UserDetails is the full aggregate returned by atomic creation: the user
// plus every row inserted in the same consistency unit.
type UserDetails struct {
	User           `json:"user"`
	Profile        Profile        `json:"profile"`
	Emails         []Email        `json:"emails"`
	Phones         []Phone        `json:"phones"`
	AuthIdentities []AuthIdentity `json:"auth_identities"`
}
