package errors

import "janus/internal/shared/apperrors"

var (
	ErrUserNotFound  = apperrors.NotFound("user", "user not found")
	ErrEmailNotFound = apperrors.NotFound("email", "email not found")

	ErrUsernameConflict = apperrors.Conflict("username", "username already exists")
	ErrEmailConflict    = apperrors.Conflict("email", "email already exists")
	ErrPhoneConflict    = apperrors.Conflict("phone", "phone number already exists")

	ErrEmailRequired           = apperrors.Validation("email", "email is required")
	ErrPasswordRequired        = apperrors.Validation("password", "password is required")
	ErrInvalidPhoneNumber      = apperrors.Validation("phone", "phone number must be in E.164 format")
	ErrInvalidStatusTransition = apperrors.Validation("user_status", "status transition not permitted")
	ErrEmailNotOwnedByUser     = apperrors.Validation("email", "email does not belong to the user")
)
