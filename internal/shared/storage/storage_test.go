package storage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"janus/internal/shared/apperrors"
)

var errUsernameTaken = apperrors.Conflict("user", "username already exists")

func TestTranslateKnownConstraint(t *testing.T) {
	cause := &pgconn.PgError{Code: "23505", ConstraintName: "users_username_unique"}

	got := Translate(cause, map[string]*apperrors.Error{
		"users_username_unique": errUsernameTaken,
	})
	if !errors.Is(got, errUsernameTaken) {
		t.Fatalf("expected mapped domain error, got %v", got)
	}
}

func TestTranslateUnknownConstraintIsInternal(t *testing.T) {
	cause := &pgconn.PgError{Code: "23503", ConstraintName: "some_new_fkey"}

	got := Translate(cause, map[string]*apperrors.Error{
		"users_username_unique": errUsernameTaken,
	})
	if apperrors.CodeOf(got) != apperrors.CodeInternal {
		t.Fatalf("expected INTERNAL for unmapped constraint, got %v", got)
	}
}

func TestTranslateNonConstraintFailure(t *testing.T) {
	if got := Translate(fmt.Errorf("connection reset"), nil); apperrors.CodeOf(got) != apperrors.CodeInternal {
		t.Fatalf("expected INTERNAL for non-pg failure, got %v", got)
	}
	if got := Translate(nil, nil); got != nil {
		t.Fatalf("expected nil passthrough, got %v", got)
	}
}

func TestAsViolationIgnoresNonIntegrityCodes(t *testing.T) {
	if _, ok := AsViolation(&pgconn.PgError{Code: "42703"}); ok {
		t.Fatalf("syntax-class errors must not classify as violations")
	}
	if violation, ok := AsViolation(fmt.Errorf("wrap: %w", &pgconn.PgError{Code: "23505", ConstraintName: "x_unique"})); !ok || violation.Constraint != "x_unique" {
		t.Fatalf("expected wrapped integrity error to classify, got %v %v", violation, ok)
	}
}
