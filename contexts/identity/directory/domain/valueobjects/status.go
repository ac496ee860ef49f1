package valueobjects

import (
	"janus/internal/shared/apperrors"
)

// UserStatus is the closed lifecycle state set of a user account.
type UserStatus string

const (
	UserStatusInactive  UserStatus = "INACTIVE"
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
	UserStatusDisabled  UserStatus = "DISABLED"
	UserStatusClosed    UserStatus = "CLOSED"
)

// ParseUserStatus rejects values outside the closed set before they can
// reach storage.
func ParseUserStatus(raw string) (UserStatus, error) {
	switch UserStatus(raw) {
	case UserStatusInactive, UserStatusActive, UserStatusSuspended, UserStatusDisabled, UserStatusClosed:
		return UserStatus(raw), nil
	}
	return "", apperrors.Validation("user_status", "unknown user status: "+raw)
}

// CanTransitionTo reports whether moving to next is a legal lifecycle step.
// Reapplying the current status is always allowed (idempotent no-op).
//
// INACTIVE -> ACTIVE; ACTIVE <-> SUSPENDED; ACTIVE/SUSPENDED -> DISABLED;
// any non-terminal state -> CLOSED. CLOSED is terminal.
func (s UserStatus) CanTransitionTo(next UserStatus) bool {
	if s == next {
		return true
	}
	if s == UserStatusClosed {
		return false
	}
	if next == UserStatusClosed {
		return true
	}
	switch s {
	case UserStatusInactive:
		return next == UserStatusActive
	case UserStatusActive:
		return next == UserStatusSuspended || next == UserStatusDisabled
	case UserStatusSuspended:
		return next == UserStatusActive || next == UserStatusDisabled
	default:
		return false
	}
}
