package entities

import "time"

// Token is a per-application credential bound to a session. Only the secret's
// hash is stored. PreviousTokenID links each issuance to the token it
// superseded, forming a singly linked rotation chain whose head is the only
// live token for the (session, application) pair.
type Token struct {
	ID            string `json:"id"`
	SessionID     int64  `json:"session_id"`
	ApplicationID int32  `json:"application_id"`

	TokenHash string `json:"-"`

	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`

	IPAddress *string `json:"ip_address,omitempty"`
	IPCountry *string `json:"ip_country,omitempty"`

	PreviousTokenID *string `json:"previous_token_id,omitempty"`
}

// LiveAt reports whether the token is valid at the given instant.
func (t Token) LiveAt(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}
