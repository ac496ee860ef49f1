package sessions

import (
	"log/slog"

	"janus/contexts/identity/sessions/adapters/memory"
	postgresadapter "janus/contexts/identity/sessions/adapters/postgres"
	"janus/contexts/identity/sessions/application/commands"
	"janus/contexts/identity/sessions/application/queries"
	"janus/contexts/identity/sessions/ports"
)

// Module is the session-ledger composition root exposed to runtime wiring.
type Module struct {
	RecordSignIn     commands.RecordSignInEventUseCase
	OpenSession      commands.OpenSessionUseCase
	IssueToken       commands.IssueTokenUseCase
	RevokeSession    commands.RevokeSessionUseCase
	TerminateSession commands.TerminateSessionUseCase
	ElevateSession   commands.ElevateSessionUseCase
	TouchSession     commands.TouchSessionUseCase
	CheckToken       queries.CheckTokenUseCase
	TokenChain       queries.TokenChainUseCase
	GetSession       queries.GetSessionUseCase

	Store *memory.Store
}

// Dependencies captures all runtime ports required by NewModule.
type Dependencies struct {
	Repository  ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		RecordSignIn: commands.RecordSignInEventUseCase{
			Repository:  deps.Repository,
			Clock:       deps.Clock,
			IDGenerator: deps.IDGenerator,
			Logger:      deps.Logger,
		},
		OpenSession: commands.OpenSessionUseCase{
			Repository: deps.Repository,
			Clock:      deps.Clock,
			Logger:     deps.Logger,
		},
		IssueToken: commands.IssueTokenUseCase{
			Repository:  deps.Repository,
			Clock:       deps.Clock,
			IDGenerator: deps.IDGenerator,
			Logger:      deps.Logger,
		},
		RevokeSession: commands.RevokeSessionUseCase{
			Repository: deps.Repository,
			Clock:      deps.Clock,
			Logger:     deps.Logger,
		},
		TerminateSession: commands.TerminateSessionUseCase{
			Repository: deps.Repository,
			Clock:      deps.Clock,
			Logger:     deps.Logger,
		},
		ElevateSession: commands.ElevateSessionUseCase{
			Repository: deps.Repository,
			Clock:      deps.Clock,
			Logger:     deps.Logger,
		},
		TouchSession: commands.TouchSessionUseCase{
			Repository: deps.Repository,
			Clock:      deps.Clock,
		},
		CheckToken: queries.CheckTokenUseCase{
			Repository: deps.Repository,
			Clock:      deps.Clock,
			Logger:     deps.Logger,
		},
		TokenChain: queries.TokenChainUseCase{
			Repository: deps.Repository,
		},
		GetSession: queries.GetSessionUseCase{
			Repository: deps.Repository,
		},
	}
}

// NewInMemoryModule builds a development/testing module with in-memory
// persistence, the system clock and random UUIDs.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository:  store,
		Clock:       postgresadapter.SystemClock{},
		IDGenerator: postgresadapter.UUIDGenerator{},
		Logger:      logger,
	})
	module.Store = store
	return module
}
