package ports

import (
	"context"
	"time"

	"janus/contexts/identity/directory/domain/entities"
	"janus/contexts/identity/directory/domain/valueobjects"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// HashedPassword is the output of the one-way hashing collaborator: the
// opaque hash plus the algorithm tag recorded beside it.
type HashedPassword struct {
	Hash      string
	Algorithm valueobjects.PasswordAlgorithm
	Version   int
}

// PasswordHasher is the injected one-way hashing primitive. Hashing is
// CPU-bound and always runs before any transaction opens.
type PasswordHasher interface {
	Hash(ctx context.Context, plaintext string) (HashedPassword, error)
	Verify(ctx context.Context, plaintext string, stored HashedPassword) (bool, error)
}

// NewUser is the prepared aggregate handed to the repository: values are
// validated, the e-mail normalized, and the password already hashed.
type NewUser struct {
	Username      *string
	Status        valueobjects.UserStatus
	Email         string
	EmailVerified bool
	PhoneNumber   *string
	PhoneVerified bool

	FirstName   *string
	LastName    *string
	DisplayName *string
	Gender      valueobjects.Gender
	DateOfBirth *time.Time
	AvatarURL   *string

	Password HashedPassword
}

// Repository is the persistence boundary of the identity directory. The
// postgres adapter runs CreateUser and PromotePrimaryEmail inside a single
// transaction each; partial rows are never observable.
type Repository interface {
	CreateUser(ctx context.Context, draft NewUser) (entities.UserDetails, error)

	// FindUser executes the classified lookup: direct on users, or joined
	// through the matching contact table. Legitimate absence is not an
	// error.
	FindUser(ctx context.Context, id valueobjects.Identifier) (entities.User, bool, error)

	// UpdateStatus updates through whichever table the identifier matched
	// and reports the number of affected rows.
	UpdateStatus(ctx context.Context, id valueobjects.Identifier, status valueobjects.UserStatus, at time.Time) (int64, error)

	EmailExists(ctx context.Context, address string) (bool, error)
	AddEmail(ctx context.Context, userID int64, address string, verified bool) (entities.Email, error)
	MarkEmailVerified(ctx context.Context, address string) (bool, error)
	PromotePrimaryEmail(ctx context.Context, userID int64, address string) error
}
