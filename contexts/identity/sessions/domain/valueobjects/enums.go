package valueobjects

import (
	"janus/internal/shared/apperrors"
)

// SessionStatus is the closed lifecycle state set of a session.
type SessionStatus string

const (
	SessionStatusActive     SessionStatus = "ACTIVE"
	SessionStatusRevoked    SessionStatus = "REVOKED"
	SessionStatusTerminated SessionStatus = "TERMINATED"
)

func ParseSessionStatus(raw string) (SessionStatus, error) {
	switch SessionStatus(raw) {
	case SessionStatusActive, SessionStatusRevoked, SessionStatusTerminated:
		return SessionStatus(raw), nil
	}
	return "", apperrors.Validation("session_status", "unknown session status: "+raw)
}

// SignInStatus is the closed outcome set of a sign-in attempt. Every attempt
// records an outcome, including failures.
type SignInStatus string

const (
	SignInStatusSuccess            SignInStatus = "SUCCESS"
	SignInStatusInvalidCredentials SignInStatus = "INVALID_CREDENTIALS"
	SignInStatusMFAFailed          SignInStatus = "MFA_FAILED"
	SignInStatusAccountLocked      SignInStatus = "ACCOUNT_LOCKED"
	SignInStatusFailed             SignInStatus = "FAILED"
)

func ParseSignInStatus(raw string) (SignInStatus, error) {
	switch SignInStatus(raw) {
	case SignInStatusSuccess, SignInStatusInvalidCredentials, SignInStatusMFAFailed,
		SignInStatusAccountLocked, SignInStatusFailed:
		return SignInStatus(raw), nil
	}
	return "", apperrors.Validation("sign_in_status", "unknown sign-in status: "+raw)
}
