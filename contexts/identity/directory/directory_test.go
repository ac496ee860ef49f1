package directory_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	directory "janus/contexts/identity/directory"
	"janus/contexts/identity/directory/adapters/crypto"
	"janus/contexts/identity/directory/adapters/memory"
	"janus/contexts/identity/directory/application/commands"
	domainerrors "janus/contexts/identity/directory/domain/errors"
	"janus/contexts/identity/directory/domain/valueobjects"
)

func strptr(v string) *string { return &v }

func createUser(t *testing.T, module directory.Module, email string, extra func(*commands.CreateUserCommand)) int64 {
	t.Helper()

	cmd := commands.CreateUserCommand{
		Email:    email,
		Password: "correct horse battery staple",
		Status:   "ACTIVE",
	}
	if extra != nil {
		extra(&cmd)
	}

	user, err := module.CreateUser.Execute(context.Background(), cmd)
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user.ID
}

func TestCreateUserBuildsFullAggregate(t *testing.T) {
	module := directory.NewInMemoryModule(nil)
	ctx := context.Background()

	user, err := module.CreateUser.Execute(ctx, commands.CreateUserCommand{
		Username:    strptr("janedoe"),
		Status:      "ACTIVE",
		Password:    "correct horse battery staple",
		Email:       "Jane.Doe@Example.COM",
		PhoneNumber: strptr("+14155550100"),
		FirstName:   strptr("Jane"),
		LastName:    strptr("Doe"),
		Gender:      "FEMALE",
	})
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	if user.ID == 0 {
		t.Fatalf("expected a generated user id")
	}
	if user.Profile.UserID != user.ID {
		t.Fatalf("profile belongs to user %d, expected %d", user.Profile.UserID, user.ID)
	}
	if len(user.Emails) != 1 || user.Emails[0].Address != "jane.doe@example.com" {
		t.Fatalf("expected one lowercased primary email, got %+v", user.Emails)
	}
	if !user.Emails[0].IsPrimary {
		t.Fatalf("expected creation email to be primary")
	}
	if len(user.Phones) != 1 || user.Phones[0].Number != "+14155550100" {
		t.Fatalf("expected one phone, got %+v", user.Phones)
	}
	if len(user.AuthIdentities) != 1 {
		t.Fatalf("expected one PASSWORD auth identity, got %+v", user.AuthIdentities)
	}
	if user.AuthIdentities[0].Provider != valueobjects.AuthProviderPassword {
		t.Fatalf("expected PASSWORD provider, got %s", user.AuthIdentities[0].Provider)
	}
	if user.AuthIdentities[0].ProviderKey != "jane.doe@example.com" {
		t.Fatalf("expected provider key to be the normalized email, got %q", user.AuthIdentities[0].ProviderKey)
	}
}

func TestCreateUserValidation(t *testing.T) {
	module := directory.NewInMemoryModule(nil)
	ctx := context.Background()

	_, err := module.CreateUser.Execute(ctx, commands.CreateUserCommand{Password: "pw"})
	if !errors.Is(err, domainerrors.ErrEmailRequired) {
		t.Fatalf("expected email required, got %v", err)
	}

	_, err = module.CreateUser.Execute(ctx, commands.CreateUserCommand{Email: "a@b.c"})
	if !errors.Is(err, domainerrors.ErrPasswordRequired) {
		t.Fatalf("expected password required, got %v", err)
	}

	_, err = module.CreateUser.Execute(ctx, commands.CreateUserCommand{
		Email:       "a@b.c",
		Password:    "pw",
		PhoneNumber: strptr("4155550100"),
	})
	if !errors.Is(err, domainerrors.ErrInvalidPhoneNumber) {
		t.Fatalf("expected invalid phone, got %v", err)
	}
}

func TestCreateUserConflictLeavesNoPartialRows(t *testing.T) {
	module := directory.NewInMemoryModule(nil)
	ctx := context.Background()

	createUser(t, module, "taken@example.com", nil)
	users, profiles, emails, phones, identities, passwords := module.Store.RowCounts()

	_, err := module.CreateUser.Execute(ctx, commands.CreateUserCommand{
		Email:    "taken@example.com",
		Password: "another password",
	})
	if !errors.Is(err, domainerrors.ErrEmailConflict) {
		t.Fatalf("expected email conflict, got %v", err)
	}

	u2, p2, e2, ph2, i2, pw2 := module.Store.RowCounts()
	if u2 != users || p2 != profiles || e2 != emails || ph2 != phones || i2 != identities || pw2 != passwords {
		t.Fatalf("conflict must not leave partial rows: before (%d %d %d %d %d %d), after (%d %d %d %d %d %d)",
			users, profiles, emails, phones, identities, passwords, u2, p2, e2, ph2, i2, pw2)
	}
}

func TestGetUserByEveryIdentifierKind(t *testing.T) {
	module := directory.NewInMemoryModule(nil)
	ctx := context.Background()

	id := createUser(t, module, "lookup@example.com", func(cmd *commands.CreateUserCommand) {
		cmd.Username = strptr("lookupuser")
		cmd.PhoneNumber = strptr("+447700900000")
	})

	for _, identifier := range []string{
		strconv.FormatInt(id, 10),
		"Lookup@Example.com",
		"+447700900000",
		"lookupuser",
	} {
		user, err := module.GetUser.Execute(ctx, identifier)
		if err != nil {
			t.Fatalf("lookup by %q failed: %v", identifier, err)
		}
		if user.ID != id {
			t.Fatalf("lookup by %q resolved user %d, expected %d", identifier, user.ID, id)
		}
	}

	if _, err := module.GetUser.Execute(ctx, "nobody"); !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

func TestUpdateStatusStampsInjectedClock(t *testing.T) {
	frozen := time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC)
	store := memory.NewStore()
	module := directory.NewModule(directory.Dependencies{
		Repository: store,
		Hasher:     crypto.Argon2Hasher{},
		Clock:      fixedClock{at: frozen},
	})
	module.Store = store
	ctx := context.Background()

	id := createUser(t, module, "clock@example.com", nil)
	identifier := strconv.FormatInt(id, 10)

	if err := module.UpdateStatus.Execute(ctx, identifier, "SUSPENDED"); err != nil {
		t.Fatalf("suspend failed: %v", err)
	}
	user, err := module.GetUser.Execute(ctx, identifier)
	if err != nil {
		t.Fatalf("get user failed: %v", err)
	}
	if !user.UpdatedAt.Equal(frozen) {
		t.Fatalf("expected update stamped at %v, got %v", frozen, user.UpdatedAt)
	}
}

func TestUpdateStatusStateMachine(t *testing.T) {
	module := directory.NewInMemoryModule(nil)
	ctx := context.Background()

	id := createUser(t, module, "status@example.com", func(cmd *commands.CreateUserCommand) {
		cmd.Status = "INACTIVE"
	})
	identifier := strconv.FormatInt(id, 10)

	if err := module.UpdateStatus.Execute(ctx, identifier, "SUSPENDED"); !errors.Is(err, domainerrors.ErrInvalidStatusTransition) {
		t.Fatalf("INACTIVE -> SUSPENDED should be illegal, got %v", err)
	}
	if err := module.UpdateStatus.Execute(ctx, identifier, "ACTIVE"); err != nil {
		t.Fatalf("INACTIVE -> ACTIVE failed: %v", err)
	}
	// Idempotent reapplication.
	if err := module.UpdateStatus.Execute(ctx, identifier, "ACTIVE"); err != nil {
		t.Fatalf("same-status reapply must be a no-op, got %v", err)
	}
	if err := module.UpdateStatus.Execute(ctx, identifier, "CLOSED"); err != nil {
		t.Fatalf("ACTIVE -> CLOSED failed: %v", err)
	}
	if err := module.UpdateStatus.Execute(ctx, identifier, "ACTIVE"); !errors.Is(err, domainerrors.ErrInvalidStatusTransition) {
		t.Fatalf("CLOSED must be terminal, got %v", err)
	}

	if err := module.UpdateStatus.Execute(ctx, "ghost", "ACTIVE"); !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected not found for unknown identifier, got %v", err)
	}
	if err := module.UpdateStatus.Execute(ctx, identifier, "FROZEN"); err == nil {
		t.Fatalf("expected unknown status to be rejected")
	}
}

func TestEmailLifecycle(t *testing.T) {
	module := directory.NewInMemoryModule(nil)
	ctx := context.Background()

	id := createUser(t, module, "first@example.com", nil)
	identifier := strconv.FormatInt(id, 10)

	email, err := module.AddEmail.Execute(ctx, identifier, "Second@Example.com", false)
	if err != nil {
		t.Fatalf("add email failed: %v", err)
	}
	if email.Address != "second@example.com" || email.IsPrimary {
		t.Fatalf("expected lowercased secondary email, got %+v", email)
	}

	exists, err := module.EmailExists.Execute(ctx, "second@example.com")
	if err != nil || !exists {
		t.Fatalf("expected second email to exist, got %v %v", exists, err)
	}

	if err := module.VerifyEmail.Execute(ctx, "second@example.com"); err != nil {
		t.Fatalf("verify email failed: %v", err)
	}
	if err := module.VerifyEmail.Execute(ctx, "ghost@example.com"); !errors.Is(err, domainerrors.ErrEmailNotFound) {
		t.Fatalf("expected email not found, got %v", err)
	}

	if err := module.SetPrimaryEmail.Execute(ctx, identifier, "second@example.com"); err != nil {
		t.Fatalf("set primary failed: %v", err)
	}
	var primaries int
	for _, row := range module.Store.UserEmails(id) {
		if row.IsPrimary {
			primaries++
			if row.Address != "second@example.com" {
				t.Fatalf("expected second@example.com to be primary, got %q", row.Address)
			}
		}
	}
	if primaries != 1 {
		t.Fatalf("expected exactly one primary email, got %d", primaries)
	}

	_, err = module.AddEmail.Execute(ctx, identifier, "first@example.com", false)
	if !errors.Is(err, domainerrors.ErrEmailConflict) {
		t.Fatalf("expected conflict for duplicate email, got %v", err)
	}
}
