// Package apperrors defines the closed domain error vocabulary surfaced to
// callers of every Janus service.
//
// Storage internals never leak upward: adapters translate low-level failures
// into these coded errors, and anything unmapped becomes an opaque INTERNAL
// error whose cause is kept only for logging.
package apperrors

import (
	"errors"
	"fmt"
)

// Code classifies an error for callers.
type Code string

const (
	CodeNotFound   Code = "NOT_FOUND"
	CodeConflict   Code = "CONFLICT"
	CodeValidation Code = "VALIDATION"
	CodeInternal   Code = "INTERNAL"
)

// Error carries a stable code, the entity or field it concerns, and a message
// safe to show to callers. Internal holds the underlying cause for logging and
// is never part of the caller-visible surface.
type Error struct {
	Code     Code
	Entity   string
	Message  string
	Internal error
}

func (e *Error) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s/%s: %s: %v", e.Code, e.Entity, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s/%s: %s", e.Code, e.Entity, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Internal
}

// Is matches sentinel values by code and entity so a translated error wrapping
// a storage cause still satisfies errors.Is against its sentinel.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code && e.Entity == other.Entity
}

// WithInternal returns a copy of the sentinel carrying the underlying cause.
func (e *Error) WithInternal(cause error) *Error {
	clone := *e
	clone.Internal = cause
	return &clone
}

func NotFound(entity, message string) *Error {
	return &Error{Code: CodeNotFound, Entity: entity, Message: message}
}

func Conflict(entity, message string) *Error {
	return &Error{Code: CodeConflict, Entity: entity, Message: message}
}

func Validation(entity, message string) *Error {
	return &Error{Code: CodeValidation, Entity: entity, Message: message}
}

func Internal(cause error) *Error {
	return &Error{Code: CodeInternal, Entity: "internal", Message: "internal error", Internal: cause}
}

// CodeOf extracts the classification of err, or CodeInternal when err is not
// part of the domain vocabulary.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}
