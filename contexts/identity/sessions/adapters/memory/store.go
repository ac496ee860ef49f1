// Package memory provides an in-memory ports.Repository for development and
// tests. It mirrors the postgres adapter's semantics: append-only sign-in
// events, token hash uniqueness and atomic rotation of the live token per
// (session, application) pair.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"janus/contexts/identity/sessions/domain/entities"
	domainerrors "janus/contexts/identity/sessions/domain/errors"
	"janus/contexts/identity/sessions/domain/valueobjects"
)

type Store struct {
	mu sync.RWMutex

	events   map[string]entities.SignInEvent
	sessions map[int64]entities.Session
	tokens   map[string]entities.Token

	nextSessionID int64
}

func NewStore() *Store {
	return &Store{
		events:        make(map[string]entities.SignInEvent),
		sessions:      make(map[int64]entities.Session),
		tokens:        make(map[string]entities.Token),
		nextSessionID: 1,
	}
}

func (s *Store) InsertSignInEvent(_ context.Context, event entities.SignInEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events[event.ID] = event
	return nil
}

func (s *Store) FindSignInEvent(_ context.Context, id string) (entities.SignInEvent, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok := s.events[id]
	return event, ok, nil
}

func (s *Store) InsertSession(_ context.Context, session entities.Session) (entities.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[session.SignInEventID]; !ok {
		return entities.Session{}, domainerrors.ErrSignInEventNotFound
	}

	session.ID = s.nextSessionID
	s.nextSessionID++
	s.sessions[session.ID] = session
	return session, nil
}

func (s *Store) FindSession(_ context.Context, id int64) (entities.Session, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	return session, ok, nil
}

func (s *Store) SetSessionStatus(_ context.Context, id int64, status valueobjects.SessionStatus, terminatedAt *time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return false, nil
	}
	session.Status = status
	if terminatedAt != nil {
		at := *terminatedAt
		session.TerminatedAt = &at
	}
	s.sessions[id] = session
	return true, nil
}

func (s *Store) TouchSession(_ context.Context, id int64, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return false, nil
	}
	session.LastUsedAt = at
	s.sessions[id] = session
	return true, nil
}

func (s *Store) ElevateSession(_ context.Context, id int64, until time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return false, nil
	}
	session.ElevatedUntil = &until
	s.sessions[id] = session
	return true, nil
}

func (s *Store) RotateToken(_ context.Context, token entities.Token) (entities.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[token.SessionID]; !ok {
		return entities.Token{}, domainerrors.ErrSessionNotFound
	}
	for _, existing := range s.tokens {
		if existing.TokenHash == token.TokenHash {
			return entities.Token{}, domainerrors.ErrTokenHashConflict
		}
	}

	if live, ok := s.livePairLocked(token.SessionID, token.ApplicationID); ok {
		at := token.CreatedAt
		live.RevokedAt = &at
		s.tokens[live.ID] = live
		prev := live.ID
		token.PreviousTokenID = &prev
	}

	s.tokens[token.ID] = token
	return token, nil
}

func (s *Store) FindTokenByHash(_ context.Context, hash string) (entities.Token, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, token := range s.tokens {
		if token.TokenHash == hash {
			return token, true, nil
		}
	}
	return entities.Token{}, false, nil
}

func (s *Store) LiveToken(_ context.Context, sessionID int64, applicationID int32) (entities.Token, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	token, ok := s.livePairLocked(sessionID, applicationID)
	return token, ok, nil
}

func (s *Store) PairTokens(_ context.Context, sessionID int64, applicationID int32) ([]entities.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tokens []entities.Token
	for _, token := range s.tokens {
		if token.SessionID == sessionID && token.ApplicationID == applicationID {
			tokens = append(tokens, token)
		}
	}
	sort.Slice(tokens, func(i, j int) bool {
		return tokens[i].CreatedAt.After(tokens[j].CreatedAt)
	})
	return tokens, nil
}

func (s *Store) RevokeSessionTokens(_ context.Context, sessionID int64, at time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var revoked int64
	for id, token := range s.tokens {
		if token.SessionID == sessionID && token.RevokedAt == nil {
			when := at
			token.RevokedAt = &when
			s.tokens[id] = token
			revoked++
		}
	}
	return revoked, nil
}

func (s *Store) livePairLocked(sessionID int64, applicationID int32) (entities.Token, bool) {
	for _, token := range s.tokens {
		if token.SessionID == sessionID && token.ApplicationID == applicationID && token.RevokedAt == nil {
			return token, true
		}
	}
	return entities.Token{}, false
}
