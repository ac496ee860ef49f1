package organisations

import (
	"log/slog"

	"janus/contexts/identity/organisations/adapters/memory"
	"janus/contexts/identity/organisations/application/commands"
	"janus/contexts/identity/organisations/application/queries"
	"janus/contexts/identity/organisations/ports"
)

// Module is the organisations composition root exposed to runtime wiring.
type Module struct {
	CreateOrganisation    commands.CreateOrganisationUseCase
	AddMember             commands.AddMemberUseCase
	ListUserOrganisations queries.ListUserOrganisationsUseCase

	Store *memory.Store
}

// Dependencies captures all runtime ports required by NewModule.
type Dependencies struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		CreateOrganisation: commands.CreateOrganisationUseCase{
			Repository: deps.Repository,
			Logger:     deps.Logger,
		},
		AddMember: commands.AddMemberUseCase{
			Repository: deps.Repository,
			Logger:     deps.Logger,
		},
		ListUserOrganisations: queries.ListUserOrganisationsUseCase{
			Repository: deps.Repository,
		},
	}
}

// NewInMemoryModule builds a development/testing module with in-memory
// persistence.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository: store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
