package entities

import (
	"time"

	"janus/contexts/identity/directory/domain/valueobjects"
)

// AuthIdentity is a provider-scoped credential binding. ProviderKey is opaque
// to the directory: for PASSWORD it is the normalized primary e-mail, for
// federated providers it is the subject the provider reports.
type AuthIdentity struct {
	ID          int64                     `json:"id"`
	UserID      int64                     `json:"user_id"`
	Provider    valueobjects.AuthProvider `json:"provider"`
	ProviderKey string                    `json:"provider_key"`
	CreatedAt   time.Time                 `json:"created_at"`
}

// Password is the credential attached to exactly one PASSWORD auth identity.
// Only the opaque hash is ever stored.
type Password struct {
	AuthIdentityID int64                          `json:"auth_identity_id"`
	Hash           string                         `json:"-"`
	Algorithm      valueobjects.PasswordAlgorithm `json:"algorithm"`
	Version        int                            `json:"version"`
	CreatedAt      time.Time                      `json:"created_at"`
}
