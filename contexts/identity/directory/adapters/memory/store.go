// Package memory provides an in-memory ports.Repository for development and
// tests. It enforces the same uniqueness rules and all-or-nothing aggregate
// creation as the postgres adapter.
package memory

import (
	"context"
	"sync"
	"time"

	"janus/contexts/identity/directory/domain/entities"
	domainerrors "janus/contexts/identity/directory/domain/errors"
	"janus/contexts/identity/directory/domain/valueobjects"
	"janus/contexts/identity/directory/ports"
)

// User IDs start in the twelve-digit range so their decimal form classifies
// as an ID, matching production identifiers.
const firstUserID = 100000000001

type Store struct {
	mu sync.Mutex

	nextUserID     int64
	nextEmailID    int64
	nextPhoneID    int64
	nextIdentityID int64

	users      map[int64]entities.User
	profiles   map[int64]entities.Profile
	emails     map[string]entities.Email
	phones     map[string]entities.Phone
	identities map[int64][]entities.AuthIdentity
	passwords  map[int64]entities.Password
	usernames  map[string]int64
}

func NewStore() *Store {
	return &Store{
		nextUserID:     firstUserID,
		nextEmailID:    1,
		nextPhoneID:    1,
		nextIdentityID: 1,
		users:          make(map[int64]entities.User),
		profiles:       make(map[int64]entities.Profile),
		emails:         make(map[string]entities.Email),
		phones:         make(map[string]entities.Phone),
		identities:     make(map[int64][]entities.AuthIdentity),
		passwords:      make(map[int64]entities.Password),
		usernames:      make(map[string]int64),
	}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) CreateUser(_ context.Context, draft ports.NewUser) (entities.UserDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Conflict checks run before any write so a failure leaves no partial
	// rows, mirroring transactional rollback.
	if draft.Username != nil {
		if _, taken := s.usernames[*draft.Username]; taken {
			return entities.UserDetails{}, domainerrors.ErrUsernameConflict
		}
	}
	if _, taken := s.emails[draft.Email]; taken {
		return entities.UserDetails{}, domainerrors.ErrEmailConflict
	}
	if draft.PhoneNumber != nil {
		if _, taken := s.phones[*draft.PhoneNumber]; taken {
			return entities.UserDetails{}, domainerrors.ErrPhoneConflict
		}
	}

	now := s.Now()
	user := entities.User{
		ID:        s.nextUserID,
		Username:  draft.Username,
		Status:    draft.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nextUserID++
	s.users[user.ID] = user
	if draft.Username != nil {
		s.usernames[*draft.Username] = user.ID
	}

	profile := entities.Profile{
		UserID:      user.ID,
		FirstName:   draft.FirstName,
		LastName:    draft.LastName,
		DisplayName: draft.DisplayName,
		Gender:      draft.Gender,
		DateOfBirth: draft.DateOfBirth,
		AvatarURL:   draft.AvatarURL,
	}
	s.profiles[user.ID] = profile

	email := entities.Email{
		ID:         s.nextEmailID,
		UserID:     user.ID,
		Address:    draft.Email,
		IsPrimary:  true,
		IsVerified: draft.EmailVerified,
		CreatedAt:  now,
	}
	s.nextEmailID++
	s.emails[email.Address] = email

	var phones []entities.Phone
	if draft.PhoneNumber != nil {
		phone := entities.Phone{
			ID:         s.nextPhoneID,
			UserID:     user.ID,
			Number:     *draft.PhoneNumber,
			IsPrimary:  true,
			IsVerified: draft.PhoneVerified,
			CreatedAt:  now,
		}
		s.nextPhoneID++
		s.phones[phone.Number] = phone
		phones = append(phones, phone)
	}

	identity := entities.AuthIdentity{
		ID:          s.nextIdentityID,
		UserID:      user.ID,
		Provider:    valueobjects.AuthProviderPassword,
		ProviderKey: draft.Email,
		CreatedAt:   now,
	}
	s.nextIdentityID++
	s.identities[user.ID] = append(s.identities[user.ID], identity)
	s.passwords[identity.ID] = entities.Password{
		AuthIdentityID: identity.ID,
		Hash:           draft.Password.Hash,
		Algorithm:      draft.Password.Algorithm,
		Version:        draft.Password.Version,
		CreatedAt:      now,
	}

	return entities.UserDetails{
		User:           user,
		Profile:        profile,
		Emails:         []entities.Email{email},
		Phones:         phones,
		AuthIdentities: []entities.AuthIdentity{identity},
	}, nil
}

func (s *Store) FindUser(_ context.Context, id valueobjects.Identifier) (entities.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID, found := s.resolveLocked(id)
	if !found {
		return entities.User{}, false, nil
	}
	return s.users[userID], true, nil
}

func (s *Store) UpdateStatus(_ context.Context, id valueobjects.Identifier, status valueobjects.UserStatus, at time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID, found := s.resolveLocked(id)
	if !found {
		return 0, nil
	}
	user := s.users[userID]
	user.Status = status
	user.UpdatedAt = at
	s.users[userID] = user
	return 1, nil
}

func (s *Store) EmailExists(_ context.Context, address string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, found := s.emails[address]
	return found, nil
}

func (s *Store) AddEmail(_ context.Context, userID int64, address string, verified bool) (entities.Email, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.emails[address]; taken {
		return entities.Email{}, domainerrors.ErrEmailConflict
	}
	email := entities.Email{
		ID:         s.nextEmailID,
		UserID:     userID,
		Address:    address,
		IsVerified: verified,
		CreatedAt:  s.Now(),
	}
	s.nextEmailID++
	s.emails[address] = email
	return email, nil
}

func (s *Store) MarkEmailVerified(_ context.Context, address string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email, found := s.emails[address]
	if !found {
		return false, nil
	}
	email.IsVerified = true
	s.emails[address] = email
	return true, nil
}

func (s *Store) PromotePrimaryEmail(_ context.Context, userID int64, address string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, found := s.emails[address]
	if !found {
		return domainerrors.ErrEmailNotFound
	}
	if target.UserID != userID {
		return domainerrors.ErrEmailNotOwnedByUser
	}

	for addr, email := range s.emails {
		if email.UserID == userID && email.IsPrimary {
			email.IsPrimary = false
			s.emails[addr] = email
		}
	}
	target.IsPrimary = true
	s.emails[address] = target
	return nil
}

func (s *Store) resolveLocked(id valueobjects.Identifier) (int64, bool) {
	switch id.Kind {
	case valueobjects.ByID:
		_, found := s.users[id.UserID]
		return id.UserID, found
	case valueobjects.ByUsername:
		userID, found := s.usernames[id.Value]
		return userID, found
	case valueobjects.ByEmail:
		email, found := s.emails[id.Value]
		return email.UserID, found
	case valueobjects.ByPhone:
		phone, found := s.phones[id.Value]
		return phone.UserID, found
	default:
		return 0, false
	}
}

// UserEmails returns the user's e-mail rows; test helper.
func (s *Store) UserEmails(userID int64) []entities.Email {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entities.Email
	for _, email := range s.emails {
		if email.UserID == userID {
			out = append(out, email)
		}
	}
	return out
}

// RowCounts reports per-table row counts; used to assert all-or-nothing
// aggregate creation.
func (s *Store) RowCounts() (users, profiles, emails, phones, identities, passwords int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	identityCount := 0
	for _, list := range s.identities {
		identityCount += len(list)
	}
	return len(s.users), len(s.profiles), len(s.emails), len(s.phones), identityCount, len(s.passwords)
}
