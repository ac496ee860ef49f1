// Package memory provides an in-memory ports.Repository for development and
// tests. It enforces the same name and per-owner role uniqueness as the
// postgres adapter.
package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"janus/contexts/system/registry/domain/entities"
	domainerrors "janus/contexts/system/registry/domain/errors"
)

type Store struct {
	mu sync.RWMutex

	applications map[int32]entities.Application
	services     map[int32]entities.Service

	nextApplicationID int32
	nextServiceID     int32
	nextRoleID        int32
	nextKeyID         int32
}

func NewStore() *Store {
	return &Store{
		applications:      make(map[int32]entities.Application),
		services:          make(map[int32]entities.Service),
		nextApplicationID: 1,
		nextServiceID:     1,
		nextRoleID:        1,
		nextKeyID:         1,
	}
}

// Loads hand out copies with their own Keys/Configurations/Roles backing
// arrays. A snapshot built from a load must stay frozen while later upserts
// rewrite the store's own slices.
func (s *Store) LoadApplications(_ context.Context) ([]entities.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	applications := make([]entities.Application, 0, len(s.applications))
	for _, application := range s.applications {
		application.Keys = slices.Clone(application.Keys)
		application.Configurations = slices.Clone(application.Configurations)
		application.Roles = slices.Clone(application.Roles)
		applications = append(applications, application)
	}
	sort.Slice(applications, func(i, j int) bool { return applications[i].ID < applications[j].ID })
	return applications, nil
}

func (s *Store) LoadServices(_ context.Context) ([]entities.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	services := make([]entities.Service, 0, len(s.services))
	for _, service := range s.services {
		service.Keys = slices.Clone(service.Keys)
		service.Configurations = slices.Clone(service.Configurations)
		service.Roles = slices.Clone(service.Roles)
		services = append(services, service)
	}
	sort.Slice(services, func(i, j int) bool { return services[i].ID < services[j].ID })
	return services, nil
}

func (s *Store) CreateApplication(_ context.Context, application entities.Application) (entities.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.applications {
		if existing.Name == application.Name {
			return entities.Application{}, domainerrors.ErrApplicationNameConflict
		}
	}

	application.ID = s.nextApplicationID
	s.nextApplicationID++
	application.CreatedAt = time.Now()
	application.UpdatedAt = application.CreatedAt
	s.applications[application.ID] = application
	return application, nil
}

func (s *Store) UpdateApplication(_ context.Context, application entities.Application) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.applications[application.ID]
	if !ok {
		return false, nil
	}
	for id, other := range s.applications {
		if id != application.ID && other.Name == application.Name {
			return false, domainerrors.ErrApplicationNameConflict
		}
	}

	existing.Name = application.Name
	existing.DisplayName = application.DisplayName
	existing.Description = application.Description
	existing.IsActive = application.IsActive
	existing.SubDomain = application.SubDomain
	existing.HomePageURL = application.HomePageURL
	existing.LogoURL = application.LogoURL
	existing.UpdatedAt = time.Now()
	s.applications[application.ID] = existing
	return true, nil
}

func (s *Store) DeleteApplication(_ context.Context, id int32) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.applications[id]; !ok {
		return false, nil
	}
	delete(s.applications, id)
	return true, nil
}

func (s *Store) CreateService(_ context.Context, service entities.Service) (entities.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.services {
		if existing.Name == service.Name {
			return entities.Service{}, domainerrors.ErrServiceNameConflict
		}
	}

	service.ID = s.nextServiceID
	s.nextServiceID++
	service.CreatedAt = time.Now()
	service.UpdatedAt = service.CreatedAt
	s.services[service.ID] = service
	return service, nil
}

func (s *Store) UpdateService(_ context.Context, service entities.Service) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.services[service.ID]
	if !ok {
		return false, nil
	}
	for id, other := range s.services {
		if id != service.ID && other.Name == service.Name {
			return false, domainerrors.ErrServiceNameConflict
		}
	}

	existing.Name = service.Name
	existing.DisplayName = service.DisplayName
	existing.Description = service.Description
	existing.IsActive = service.IsActive
	existing.SubDomain = service.SubDomain
	existing.HomePageURL = service.HomePageURL
	existing.LogoURL = service.LogoURL
	existing.UpdatedAt = time.Now()
	s.services[service.ID] = existing
	return true, nil
}

func (s *Store) DeleteService(_ context.Context, id int32) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.services[id]; !ok {
		return false, nil
	}
	delete(s.services, id)
	return true, nil
}

func (s *Store) AddApplicationRole(_ context.Context, applicationID int32, role entities.Role) (entities.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	application, ok := s.applications[applicationID]
	if !ok {
		return entities.Role{}, domainerrors.ErrApplicationNotFound
	}
	for _, existing := range application.Roles {
		if existing.Name == role.Name {
			return entities.Role{}, domainerrors.ErrApplicationRoleConflict
		}
	}

	role.ID = s.nextRoleID
	s.nextRoleID++
	role.CreatedAt = time.Now()
	role.UpdatedAt = role.CreatedAt
	application.Roles = append(application.Roles, role)
	s.applications[applicationID] = application
	return role, nil
}

func (s *Store) AddServiceRole(_ context.Context, serviceID int32, role entities.Role) (entities.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	service, ok := s.services[serviceID]
	if !ok {
		return entities.Role{}, domainerrors.ErrServiceNotFound
	}
	for _, existing := range service.Roles {
		if existing.Name == role.Name {
			return entities.Role{}, domainerrors.ErrServiceRoleConflict
		}
	}

	role.ID = s.nextRoleID
	s.nextRoleID++
	role.CreatedAt = time.Now()
	role.UpdatedAt = role.CreatedAt
	service.Roles = append(service.Roles, role)
	s.services[serviceID] = service
	return role, nil
}

func (s *Store) DeleteApplicationRole(_ context.Context, applicationID int32, roleName string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	application, ok := s.applications[applicationID]
	if !ok {
		return false, nil
	}
	for i, role := range application.Roles {
		if role.Name == roleName {
			application.Roles = append(application.Roles[:i], application.Roles[i+1:]...)
			s.applications[applicationID] = application
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) DeleteServiceRole(_ context.Context, serviceID int32, roleName string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	service, ok := s.services[serviceID]
	if !ok {
		return false, nil
	}
	for i, role := range service.Roles {
		if role.Name == roleName {
			service.Roles = append(service.Roles[:i], service.Roles[i+1:]...)
			s.services[serviceID] = service
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) AddApplicationKey(_ context.Context, applicationID int32, key entities.Key) (entities.Key, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	application, ok := s.applications[applicationID]
	if !ok {
		return entities.Key{}, domainerrors.ErrApplicationNotFound
	}

	key.ID = s.nextKeyID
	s.nextKeyID++
	key.CreatedAt = time.Now()
	key.UpdatedAt = key.CreatedAt
	application.Keys = append(application.Keys, key)
	s.applications[applicationID] = application
	return key, nil
}

func (s *Store) AddServiceKey(_ context.Context, serviceID int32, key entities.Key) (entities.Key, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	service, ok := s.services[serviceID]
	if !ok {
		return entities.Key{}, domainerrors.ErrServiceNotFound
	}

	key.ID = s.nextKeyID
	s.nextKeyID++
	key.CreatedAt = time.Now()
	key.UpdatedAt = key.CreatedAt
	service.Keys = append(service.Keys, key)
	s.services[serviceID] = service
	return key, nil
}

func (s *Store) UpsertApplicationConfiguration(_ context.Context, applicationID int32, configuration entities.Configuration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	application, ok := s.applications[applicationID]
	if !ok {
		return domainerrors.ErrApplicationNotFound
	}
	for i, existing := range application.Configurations {
		if existing.Name == configuration.Name {
			existing.Value = configuration.Value
			existing.UpdatedAt = time.Now()
			application.Configurations[i] = existing
			s.applications[applicationID] = application
			return nil
		}
	}

	configuration.CreatedAt = time.Now()
	configuration.UpdatedAt = configuration.CreatedAt
	application.Configurations = append(application.Configurations, configuration)
	s.applications[applicationID] = application
	return nil
}

func (s *Store) UpsertServiceConfiguration(_ context.Context, serviceID int32, configuration entities.Configuration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	service, ok := s.services[serviceID]
	if !ok {
		return domainerrors.ErrServiceNotFound
	}
	for i, existing := range service.Configurations {
		if existing.Name == configuration.Name {
			existing.Value = configuration.Value
			existing.UpdatedAt = time.Now()
			service.Configurations[i] = existing
			s.services[serviceID] = service
			return nil
		}
	}

	configuration.CreatedAt = time.Now()
	configuration.UpdatedAt = configuration.CreatedAt
	service.Configurations = append(service.Configurations, configuration)
	s.services[serviceID] = service
	return nil
}
