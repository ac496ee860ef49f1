package registry

import (
	"log/slog"

	"janus/contexts/system/registry/adapters/memory"
	"janus/contexts/system/registry/application"
	"janus/contexts/system/registry/application/commands"
	"janus/contexts/system/registry/application/queries"
	"janus/contexts/system/registry/ports"
)

// Module is the registry composition root exposed to runtime wiring.
type Module struct {
	CreateApplication     commands.CreateApplicationUseCase
	UpdateApplication     commands.UpdateApplicationUseCase
	DeleteApplication     commands.DeleteApplicationUseCase
	CreateService         commands.CreateServiceUseCase
	UpdateService         commands.UpdateServiceUseCase
	DeleteService         commands.DeleteServiceUseCase
	AddApplicationRole    commands.AddApplicationRoleUseCase
	AddServiceRole        commands.AddServiceRoleUseCase
	DeleteApplicationRole commands.DeleteApplicationRoleUseCase
	DeleteServiceRole     commands.DeleteServiceRoleUseCase
	AddApplicationKey     commands.AddApplicationKeyUseCase
	AddServiceKey         commands.AddServiceKeyUseCase
	ConfigureApplication  commands.UpsertApplicationConfigurationUseCase
	ConfigureService      commands.UpsertServiceConfigurationUseCase
	Reload                commands.ReloadUseCase
	GetApplication        queries.GetApplicationUseCase
	GetService            queries.GetServiceUseCase

	Catalog *application.Catalog
	Store   *memory.Store
}

// Dependencies captures all runtime ports required by NewModule. Notifier
// may be nil when no fanout transport is configured.
type Dependencies struct {
	Repository ports.Repository
	Notifier   ports.ReloadNotifier
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	catalog := application.NewCatalog(deps.Repository, deps.Logger)
	return Module{
		CreateApplication: commands.CreateApplicationUseCase{
			Repository: deps.Repository,
			Catalog:    catalog,
			Notifier:   deps.Notifier,
			Logger:     deps.Logger,
		},
		UpdateApplication: commands.UpdateApplicationUseCase{
			Repository: deps.Repository,
			Catalog:    catalog,
			Notifier:   deps.Notifier,
			Logger:     deps.Logger,
		},
		DeleteApplication: commands.DeleteApplicationUseCase{
			Repository: deps.Repository,
			Catalog:    catalog,
			Notifier:   deps.Notifier,
			Logger:     deps.Logger,
		},
		CreateService: commands.CreateServiceUseCase{
			Repository: deps.Repository,
			Catalog:    catalog,
			Notifier:   deps.Notifier,
			Logger:     deps.Logger,
		},
		UpdateService: commands.UpdateServiceUseCase{
			Repository: deps.Repository,
			Catalog:    catalog,
			Notifier:   deps.Notifier,
			Logger:     deps.Logger,
		},
		DeleteService: commands.DeleteServiceUseCase{
			Repository: deps.Repository,
			Catalog:    catalog,
			Notifier:   deps.Notifier,
			Logger:     deps.Logger,
		},
		AddApplicationRole: commands.AddApplicationRoleUseCase{
			Repository: deps.Repository,
			Catalog:    catalog,
			Notifier:   deps.Notifier,
			Logger:     deps.Logger,
		},
		AddServiceRole: commands.AddServiceRoleUseCase{
			Repository: deps.Repository,
			Catalog:    catalog,
			Notifier:   deps.Notifier,
			Logger:     deps.Logger,
		},
		DeleteApplicationRole: commands.DeleteApplicationRoleUseCase{
			Repository: deps.Repository,
			Catalog:    catalog,
			Notifier:   deps.Notifier,
			Logger:     deps.Logger,
		},
		DeleteServiceRole: commands.DeleteServiceRoleUseCase{
			Repository: deps.Repository,
			Catalog:    catalog,
			Notifier:   deps.Notifier,
			Logger:     deps.Logger,
		},
		AddApplicationKey: commands.AddApplicationKeyUseCase{
			Repository: deps.Repository,
			Catalog:    catalog,
			Notifier:   deps.Notifier,
			Logger:     deps.Logger,
		},
		AddServiceKey: commands.AddServiceKeyUseCase{
			Repository: deps.Repository,
			Catalog:    catalog,
			Notifier:   deps.Notifier,
			Logger:     deps.Logger,
		},
		ConfigureApplication: commands.UpsertApplicationConfigurationUseCase{
			Repository: deps.Repository,
			Catalog:    catalog,
			Notifier:   deps.Notifier,
			Logger:     deps.Logger,
		},
		ConfigureService: commands.UpsertServiceConfigurationUseCase{
			Repository: deps.Repository,
			Catalog:    catalog,
			Notifier:   deps.Notifier,
			Logger:     deps.Logger,
		},
		Reload: commands.ReloadUseCase{
			Catalog: catalog,
			Logger:  deps.Logger,
		},
		GetApplication: queries.GetApplicationUseCase{Catalog: catalog},
		GetService:     queries.GetServiceUseCase{Catalog: catalog},

		Catalog: catalog,
	}
}

// NewInMemoryModule builds a development/testing module with in-memory
// persistence and no fanout.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository: store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
