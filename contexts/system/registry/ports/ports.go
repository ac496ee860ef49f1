package ports

import (
	"context"

	"janus/contexts/system/registry/domain/entities"
)

// Repository is the persistence boundary of the registry. Load operations
// return full aggregates (keys, configurations, roles attached) so the
// catalog snapshot can be built from two round trips.
type Repository interface {
	LoadApplications(ctx context.Context) ([]entities.Application, error)
	LoadServices(ctx context.Context) ([]entities.Service, error)

	CreateApplication(ctx context.Context, application entities.Application) (entities.Application, error)
	UpdateApplication(ctx context.Context, application entities.Application) (bool, error)
	DeleteApplication(ctx context.Context, id int32) (bool, error)

	CreateService(ctx context.Context, service entities.Service) (entities.Service, error)
	UpdateService(ctx context.Context, service entities.Service) (bool, error)
	DeleteService(ctx context.Context, id int32) (bool, error)

	AddApplicationRole(ctx context.Context, applicationID int32, role entities.Role) (entities.Role, error)
	AddServiceRole(ctx context.Context, serviceID int32, role entities.Role) (entities.Role, error)
	DeleteApplicationRole(ctx context.Context, applicationID int32, roleName string) (bool, error)
	DeleteServiceRole(ctx context.Context, serviceID int32, roleName string) (bool, error)

	AddApplicationKey(ctx context.Context, applicationID int32, key entities.Key) (entities.Key, error)
	AddServiceKey(ctx context.Context, serviceID int32, key entities.Key) (entities.Key, error)

	UpsertApplicationConfiguration(ctx context.Context, applicationID int32, configuration entities.Configuration) error
	UpsertServiceConfiguration(ctx context.Context, serviceID int32, configuration entities.Configuration) error
}

// ReloadNotifier broadcasts that the registry changed so sibling processes
// rebuild their snapshots. A nil notifier is valid; fanout is best effort and
// never fails the mutation that triggered it.
type ReloadNotifier interface {
	NotifyReload(ctx context.Context) error
}
