package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorIsMatchesCodeAndEntity(t *testing.T) {
	base := NotFound("user", "user not found")

	if !errors.Is(base.WithInternal(fmt.Errorf("row missing")), base) {
		t.Fatalf("expected wrapped error to match its base sentinel")
	}
	if errors.Is(base, NotFound("session", "session not found")) {
		t.Fatalf("expected different entities not to match")
	}
	if errors.Is(base, Conflict("user", "user exists")) {
		t.Fatalf("expected different codes not to match")
	}
}

func TestWithInternalDoesNotMutateSentinel(t *testing.T) {
	base := Conflict("email", "email already exists")
	wrapped := base.WithInternal(fmt.Errorf("duplicate key"))

	if base.Internal != nil {
		t.Fatalf("sentinel was mutated by WithInternal")
	}
	if wrapped.Internal == nil {
		t.Fatalf("expected clone to carry the cause")
	}
	if !errors.Is(wrapped, base) {
		t.Fatalf("expected clone to still match the sentinel")
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(Validation("status", "bad status")); got != CodeValidation {
		t.Fatalf("expected VALIDATION, got %s", got)
	}
	if got := CodeOf(fmt.Errorf("plain failure")); got != CodeInternal {
		t.Fatalf("expected unclassified errors to read as INTERNAL, got %s", got)
	}
	if got := CodeOf(Internal(fmt.Errorf("boom"))); got != CodeInternal {
		t.Fatalf("expected INTERNAL, got %s", got)
	}
}
