package errors

import "janus/internal/shared/apperrors"

var (
	ErrApplicationNotFound = apperrors.NotFound("application", "application not found")
	ErrServiceNotFound     = apperrors.NotFound("service", "service not found")
	ErrRoleNotFound        = apperrors.NotFound("role", "role not found")

	ErrApplicationNameConflict = apperrors.Conflict("application", "application name already exists")
	ErrServiceNameConflict     = apperrors.Conflict("service", "service name already exists")
	ErrApplicationRoleConflict = apperrors.Conflict("role", "role name already exists for this application")
	ErrServiceRoleConflict     = apperrors.Conflict("role", "role name already exists for this service")

	ErrNameRequired      = apperrors.Validation("name", "name is required")
	ErrSubDomainRequired = apperrors.Validation("sub_domain", "sub domain is required")
	ErrPublicKeyRequired = apperrors.Validation("public_key", "public key is required")
)
