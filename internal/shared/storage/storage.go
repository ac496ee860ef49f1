// Package storage classifies low-level database failures.
//
// Postgres reports integrity failures with the violated constraint's stable
// name; that name is the classification key. The translator here is total:
// a known constraint maps to its domain error, everything else collapses to
// an opaque INTERNAL error. It never retries and never interprets domain
// meaning on its own.
package storage

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"janus/internal/shared/apperrors"
)

// Postgres integrity violation class (23xxx).
const integrityViolationClass = "23"

// Violation surfaces a constraint violation without domain interpretation.
type Violation struct {
	Constraint string
	cause      error
}

func (v *Violation) Error() string {
	return fmt.Sprintf("constraint %q violated: %v", v.Constraint, v.cause)
}

func (v *Violation) Unwrap() error {
	return v.cause
}

// AsViolation extracts the structured violation from a storage error, if any.
func AsViolation(err error) (*Violation, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil, false
	}
	if len(pgErr.Code) < 2 || pgErr.Code[:2] != integrityViolationClass {
		return nil, false
	}
	return &Violation{Constraint: pgErr.ConstraintName, cause: err}, true
}

// Translate maps a storage failure onto the domain vocabulary using the
// adapter's constraint map. Unknown constraints and non-constraint failures
// classify as INTERNAL.
func Translate(err error, constraints map[string]*apperrors.Error) error {
	if err == nil {
		return nil
	}
	if violation, ok := AsViolation(err); ok {
		if domainErr, known := constraints[violation.Constraint]; known {
			return domainErr.WithInternal(violation)
		}
	}
	return apperrors.Internal(err)
}
