package errors

import "janus/internal/shared/apperrors"

var (
	ErrOrganisationNotFound = apperrors.NotFound("organisation", "organisation not found")
	ErrUserNotFound         = apperrors.NotFound("user", "user not found")

	ErrAlreadyMember = apperrors.Conflict("organisation_member", "user is already a member of this organisation")

	ErrNameRequired = apperrors.Validation("name", "organisation name is required")
)
