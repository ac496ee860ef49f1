package entities

import (
	"time"

	"janus/contexts/identity/sessions/domain/valueobjects"
)

// Session is one authenticated presence of a user, created from exactly one
// successful sign-in event.
type Session struct {
	ID            int64                      `json:"id"`
	UserID        int64                      `json:"user_id"`
	SignInEventID string                     `json:"sign_in_event_id"`
	Status        valueobjects.SessionStatus `json:"status"`

	ExpiresAt    time.Time  `json:"expires_at"`
	TerminatedAt *time.Time `json:"terminated_at,omitempty"`

	CreatedAt  time.Time `json:"created_at"`
	LastUsedAt time.Time `json:"last_used_at"`

	// ElevatedUntil bounds the step-up window; privilege requires both the
	// session to be live and this instant to be in the future.
	ElevatedUntil *time.Time `json:"elevated_until,omitempty"`
}

// ActiveAt reports whether the session is usable at the given instant.
func (s Session) ActiveAt(now time.Time) bool {
	return s.Status == valueobjects.SessionStatusActive && now.Before(s.ExpiresAt)
}

// PrivilegedAt reports whether the session may perform privileged operations
// at the given instant. Callers must never check the elevation window alone.
func (s Session) PrivilegedAt(now time.Time) bool {
	return s.ActiveAt(now) && s.ElevatedUntil != nil && now.Before(*s.ElevatedUntil)
}
