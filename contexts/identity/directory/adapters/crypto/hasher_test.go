package crypto

import (
	"context"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"janus/contexts/identity/directory/domain/valueobjects"
	"janus/contexts/identity/directory/ports"
)

func TestArgon2HashRoundTrip(t *testing.T) {
	hasher := Argon2Hasher{}
	ctx := context.Background()

	stored, err := hasher.Hash(ctx, "correct horse battery staple")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if stored.Algorithm != valueobjects.PasswordAlgorithmArgon2id {
		t.Fatalf("expected argon2id tag, got %s", stored.Algorithm)
	}
	if !strings.HasPrefix(stored.Hash, "$argon2id$") {
		t.Fatalf("unexpected hash format %q", stored.Hash)
	}

	ok, err := hasher.Verify(ctx, "correct horse battery staple", stored)
	if err != nil || !ok {
		t.Fatalf("expected verification to succeed, got %v %v", ok, err)
	}
	ok, err = hasher.Verify(ctx, "wrong password", stored)
	if err != nil || ok {
		t.Fatalf("expected verification to fail cleanly, got %v %v", ok, err)
	}
}

func TestHashesAreSalted(t *testing.T) {
	hasher := Argon2Hasher{}
	ctx := context.Background()

	first, err := hasher.Hash(ctx, "same input")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := hasher.Hash(ctx, "same input")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if first.Hash == second.Hash {
		t.Fatalf("identical hashes for the same input mean the salt is not random")
	}
}

func TestVerifySupportsLegacyBcrypt(t *testing.T) {
	hasher := Argon2Hasher{}
	ctx := context.Background()

	legacy, err := bcrypt.GenerateFromPassword([]byte("old password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt setup failed: %v", err)
	}
	stored := ports.HashedPassword{
		Hash:      string(legacy),
		Algorithm: valueobjects.PasswordAlgorithmBcrypt,
	}

	ok, err := hasher.Verify(ctx, "old password", stored)
	if err != nil || !ok {
		t.Fatalf("expected bcrypt verification to succeed, got %v %v", ok, err)
	}
	ok, err = hasher.Verify(ctx, "not it", stored)
	if err != nil || ok {
		t.Fatalf("expected bcrypt mismatch to fail cleanly, got %v %v", ok, err)
	}

	if _, err := hasher.Verify(ctx, "x", ports.HashedPassword{Hash: "h", Algorithm: "MD5"}); err == nil {
		t.Fatalf("expected unsupported algorithm to error")
	}
}
