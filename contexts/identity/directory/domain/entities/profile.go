package entities

import (
	"time"

	"janus/contexts/identity/directory/domain/valueobjects"
)

// Profile is the 1:1 companion of a user; its primary key is the user ID.
// A user never exists without a profile once creation completes.
type Profile struct {
	UserID      int64               `json:"user_id"`
	FirstName   *string             `json:"first_name,omitempty"`
	LastName    *string             `json:"last_name,omitempty"`
	DisplayName *string             `json:"display_name,omitempty"`
	Gender      valueobjects.Gender `json:"gender"`
	DateOfBirth *time.Time          `json:"date_of_birth,omitempty"`
	AvatarURL   *string             `json:"avatar_url,omitempty"`
}
