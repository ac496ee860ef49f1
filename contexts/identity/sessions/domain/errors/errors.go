package errors

import "janus/internal/shared/apperrors"

var (
	ErrSessionNotFound     = apperrors.NotFound("session", "session not found")
	ErrSignInEventNotFound = apperrors.NotFound("sign_in_event", "sign-in event not found")
	ErrTokenNotFound       = apperrors.NotFound("token", "token not found")
	ErrUserNotFound        = apperrors.NotFound("user", "user not found")
	ErrApplicationNotFound = apperrors.NotFound("application", "application not found")

	ErrTokenHashConflict = apperrors.Conflict("token", "token hash already exists")
	ErrLiveTokenExists   = apperrors.Conflict("token", "a live token already exists for this session and application")

	ErrTokenHashRequired       = apperrors.Validation("token", "token hash is required")
	ErrSignInNotSuccessful     = apperrors.Validation("sign_in_event", "session requires a successful sign-in event")
	ErrSignInEventUserMismatch = apperrors.Validation("sign_in_event", "sign-in event belongs to another user")
	ErrSessionNotActive        = apperrors.Validation("session", "session is not active")
	ErrExpiryInPast            = apperrors.Validation("expires_at", "expiry must be in the future")
)
