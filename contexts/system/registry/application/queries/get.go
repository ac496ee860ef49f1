package queries

import (
	application "janus/contexts/system/registry/application"
	"janus/contexts/system/registry/domain/entities"
	domainerrors "janus/contexts/system/registry/domain/errors"
)

// GetApplicationUseCase resolves an application by name against the current
// snapshot. No storage round trip is made.
type GetApplicationUseCase struct {
	Catalog *application.Catalog
}

// Lookup returns the entry and whether it exists.
func (u GetApplicationUseCase) Lookup(name string) (entities.Application, bool) {
	entry, ok := u.Catalog.Snapshot().Applications[name]
	return entry, ok
}

// Execute returns the entry or NOT_FOUND.
func (u GetApplicationUseCase) Execute(name string) (entities.Application, error) {
	entry, ok := u.Lookup(name)
	if !ok {
		return entities.Application{}, domainerrors.ErrApplicationNotFound
	}
	return entry, nil
}

type GetServiceUseCase struct {
	Catalog *application.Catalog
}

func (u GetServiceUseCase) Lookup(name string) (entities.Service, bool) {
	entry, ok := u.Catalog.Snapshot().Services[name]
	return entry, ok
}

func (u GetServiceUseCase) Execute(name string) (entities.Service, error) {
	entry, ok := u.Lookup(name)
	if !ok {
		return entities.Service{}, domainerrors.ErrServiceNotFound
	}
	return entry, nil
}
