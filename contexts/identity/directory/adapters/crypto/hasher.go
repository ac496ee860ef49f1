// Package crypto provides the default password hashing adapter.
//
// argon2id is the write path; bcrypt hashes are still verifiable so legacy
// credentials keep working until re-hashed (the version column on the
// credential row drives that migration).
package crypto

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"

	"janus/contexts/identity/directory/domain/valueobjects"
	"janus/contexts/identity/directory/ports"
)

// argon2id parameters following the OWASP recommendation:
// memory=64MB, iterations=3, parallelism=2.
const (
	argonTime    = 3
	argonMemory  = 64 * 1024
	argonThreads = 2
	argonKeyLen  = 32
	argonSaltLen = 16

	credentialVersion = 1
)

// Argon2Hasher is the default ports.PasswordHasher implementation.
type Argon2Hasher struct{}

func (Argon2Hasher) Hash(_ context.Context, plaintext string) (ports.HashedPassword, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return ports.HashedPassword{}, fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(plaintext), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return ports.HashedPassword{
		Hash:      encoded,
		Algorithm: valueobjects.PasswordAlgorithmArgon2id,
		Version:   credentialVersion,
	}, nil
}

func (Argon2Hasher) Verify(_ context.Context, plaintext string, stored ports.HashedPassword) (bool, error) {
	switch stored.Algorithm {
	case valueobjects.PasswordAlgorithmArgon2id:
		return verifyArgon2id(plaintext, stored.Hash)
	case valueobjects.PasswordAlgorithmBcrypt:
		err := bcrypt.CompareHashAndPassword([]byte(stored.Hash), []byte(plaintext))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, fmt.Errorf("unsupported password algorithm %q", stored.Algorithm)
	}
}

func verifyArgon2id(plaintext, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, errors.New("malformed argon2id hash")
	}

	var memory, iterations uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false, fmt.Errorf("parse argon2id parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("decode salt: %w", err)
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("decode hash: %w", err)
	}

	key := argon2.IDKey([]byte(plaintext), salt, iterations, memory, threads, uint32(len(expected)))
	return subtle.ConstantTimeCompare(key, expected) == 1, nil
}
