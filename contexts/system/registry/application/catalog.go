package application

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"janus/contexts/system/registry/domain/entities"
	"janus/contexts/system/registry/ports"
)

// Snapshot is one immutable view of both catalogs keyed by name. Snapshots
// are never mutated after publication; a reload builds a new one and swaps
// the pointer.
type Snapshot struct {
	Applications map[string]entities.Application
	Services     map[string]entities.Service
	LoadedAt     time.Time
}

func emptySnapshot() *Snapshot {
	return &Snapshot{
		Applications: map[string]entities.Application{},
		Services:     map[string]entities.Service{},
	}
}

// Catalog owns the published snapshot. Reads are lock-free; Reload may run
// concurrently with itself, last swap wins, and every swap is a complete
// catalog so readers are consistent either way.
type Catalog struct {
	Repository ports.Repository
	Logger     *slog.Logger

	current atomic.Pointer[Snapshot]
}

func NewCatalog(repository ports.Repository, logger *slog.Logger) *Catalog {
	c := &Catalog{Repository: repository, Logger: logger}
	c.current.Store(emptySnapshot())
	return c
}

// Snapshot returns the currently published view.
func (c *Catalog) Snapshot() *Snapshot {
	return c.current.Load()
}

// Reload fetches both catalogs and publishes a fresh snapshot atomically.
// On error the previous snapshot stays published.
func (c *Catalog) Reload(ctx context.Context) error {
	logger := ResolveLogger(c.Logger)

	applications, err := c.Repository.LoadApplications(ctx)
	if err != nil {
		return err
	}
	services, err := c.Repository.LoadServices(ctx)
	if err != nil {
		return err
	}

	next := &Snapshot{
		Applications: make(map[string]entities.Application, len(applications)),
		Services:     make(map[string]entities.Service, len(services)),
		LoadedAt:     time.Now(),
	}
	for _, application := range applications {
		next.Applications[application.Name] = application
	}
	for _, service := range services {
		next.Services[service.Name] = service
	}

	c.current.Store(next)
	logger.Info("registry snapshot published",
		"event", "registry_snapshot_published",
		"module", "system/registry",
		"applications", len(applications),
		"services", len(services),
	)
	return nil
}
