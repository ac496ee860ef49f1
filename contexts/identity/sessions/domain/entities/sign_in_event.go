package entities

import (
	"time"

	directoryvo "janus/contexts/identity/directory/domain/valueobjects"
	"janus/contexts/identity/sessions/domain/valueobjects"
)

// SignInEvent is an immutable audit record of one authentication attempt.
// Rows are append-only; sessions reference them with restrict-on-delete so
// the evidence a session was created from can never disappear first.
type SignInEvent struct {
	ID         string                    `json:"id"`
	UserID     int64                     `json:"user_id"`
	Identifier string                    `json:"identifier"`
	Status     valueobjects.SignInStatus `json:"status"`

	AuthModeUsed directoryvo.AuthProvider  `json:"auth_mode_used"`
	MFAModeUsed  *directoryvo.AuthProvider `json:"mfa_mode_used,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	DeviceID  *string `json:"device_id,omitempty"`
	IPAddress *string `json:"ip_address,omitempty"`
	IPCountry *string `json:"ip_country,omitempty"`
	UserAgent *string `json:"user_agent,omitempty"`
}
