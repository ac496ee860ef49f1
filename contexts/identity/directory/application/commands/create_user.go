package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "janus/contexts/identity/directory/application"
	"janus/contexts/identity/directory/domain/entities"
	domainerrors "janus/contexts/identity/directory/domain/errors"
	"janus/contexts/identity/directory/domain/valueobjects"
	"janus/contexts/identity/directory/ports"
)

// CreateUserCommand contains transport-agnostic input for account creation.
// Optional string fields use pointers to distinguish absent from empty.
type CreateUserCommand struct {
	Username *string
	Status   string
	Password string

	Email         string
	EmailVerified bool

	PhoneNumber   *string
	PhoneVerified bool

	FirstName   *string
	LastName    *string
	DisplayName *string
	Gender      string
	DateOfBirth *time.Time
	AvatarURL   *string
}

// CreateUserUseCase builds the user aggregate atomically: user, profile,
// primary e-mail, optional primary phone, a PASSWORD auth identity keyed by
// the normalized e-mail, and its credential. All rows commit or none do.
type CreateUserUseCase struct {
	Repository ports.Repository
	Hasher     ports.PasswordHasher
	Logger     *slog.Logger
}

func (u CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (entities.UserDetails, error) {
	logger := application.ResolveLogger(u.Logger)

	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" {
		return entities.UserDetails{}, domainerrors.ErrEmailRequired
	}
	if cmd.Password == "" {
		return entities.UserDetails{}, domainerrors.ErrPasswordRequired
	}
	if cmd.PhoneNumber != nil && !strings.HasPrefix(*cmd.PhoneNumber, "+") {
		return entities.UserDetails{}, domainerrors.ErrInvalidPhoneNumber
	}

	status := valueobjects.UserStatusInactive
	if cmd.Status != "" {
		parsed, err := valueobjects.ParseUserStatus(cmd.Status)
		if err != nil {
			return entities.UserDetails{}, err
		}
		status = parsed
	}

	gender := valueobjects.GenderUnspecified
	if cmd.Gender != "" {
		parsed, err := valueobjects.ParseGender(cmd.Gender)
		if err != nil {
			return entities.UserDetails{}, err
		}
		gender = parsed
	}

	// Hashing is CPU-bound; it must finish before the transaction opens so
	// no connection is held for its duration.
	hashed, err := u.Hasher.Hash(ctx, cmd.Password)
	if err != nil {
		logger.Error("password hashing failed",
			"event", "identity_create_user_hash_failed",
			"module", "identity/directory",
			"error", err.Error(),
		)
		return entities.UserDetails{}, err
	}

	draft := ports.NewUser{
		Username:      cmd.Username,
		Status:        status,
		Email:         email,
		EmailVerified: cmd.EmailVerified,
		PhoneNumber:   cmd.PhoneNumber,
		PhoneVerified: cmd.PhoneVerified,
		FirstName:     cmd.FirstName,
		LastName:      cmd.LastName,
		DisplayName:   cmd.DisplayName,
		Gender:        gender,
		DateOfBirth:   cmd.DateOfBirth,
		AvatarURL:     cmd.AvatarURL,
		Password:      hashed,
	}

	user, err := u.Repository.CreateUser(ctx, draft)
	if err != nil {
		return entities.UserDetails{}, err
	}

	logger.Info("new user created",
		"event", "identity_user_created",
		"module", "identity/directory",
		"user_id", user.ID,
	)
	return user, nil
}
