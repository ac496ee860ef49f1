// Package memory provides an in-memory ports.Repository for development and
// tests. Membership identity is the (organisation, user) pair, same as the
// postgres composite primary key.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"janus/contexts/identity/organisations/domain/entities"
	domainerrors "janus/contexts/identity/organisations/domain/errors"
)

type memberKey struct {
	organisationID int64
	userID         int64
}

type Store struct {
	mu sync.RWMutex

	organisations map[int64]entities.Organisation
	members       map[memberKey]entities.Member

	nextOrganisationID int64
}

func NewStore() *Store {
	return &Store{
		organisations:      make(map[int64]entities.Organisation),
		members:            make(map[memberKey]entities.Member),
		nextOrganisationID: 1,
	}
}

func (s *Store) CreateOrganisation(_ context.Context, organisation entities.Organisation, owner entities.Member) (entities.Organisation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	organisation.ID = s.nextOrganisationID
	s.nextOrganisationID++
	organisation.CreatedAt = time.Now()
	organisation.UpdatedAt = organisation.CreatedAt
	s.organisations[organisation.ID] = organisation

	owner.OrganisationID = organisation.ID
	owner.JoinedAt = organisation.CreatedAt
	s.members[memberKey{organisation.ID, owner.UserID}] = owner

	return organisation, nil
}

func (s *Store) FindOrganisation(_ context.Context, id int64) (entities.Organisation, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	organisation, ok := s.organisations[id]
	return organisation, ok, nil
}

func (s *Store) AddMember(_ context.Context, member entities.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.organisations[member.OrganisationID]; !ok {
		return domainerrors.ErrOrganisationNotFound
	}
	key := memberKey{member.OrganisationID, member.UserID}
	if _, ok := s.members[key]; ok {
		return domainerrors.ErrAlreadyMember
	}

	member.JoinedAt = time.Now()
	s.members[key] = member
	return nil
}

func (s *Store) ListUserMemberships(_ context.Context, userID int64) ([]entities.Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var memberships []entities.Membership
	for key, member := range s.members {
		if member.UserID != userID {
			continue
		}
		memberships = append(memberships, entities.Membership{
			Organisation: s.organisations[key.organisationID],
			Member:       member,
		})
	}
	sort.Slice(memberships, func(i, j int) bool {
		return memberships[i].Member.JoinedAt.Before(memberships[j].Member.JoinedAt)
	})
	return memberships, nil
}
