package directory

import (
	"log/slog"

	"janus/contexts/identity/directory/adapters/crypto"
	"janus/contexts/identity/directory/adapters/memory"
	postgresadapter "janus/contexts/identity/directory/adapters/postgres"
	"janus/contexts/identity/directory/application/commands"
	"janus/contexts/identity/directory/application/queries"
	"janus/contexts/identity/directory/ports"
)

// Module is the identity-directory composition root exposed to runtime wiring.
type Module struct {
	CreateUser      commands.CreateUserUseCase
	UpdateStatus    commands.UpdateStatusUseCase
	AddEmail        commands.AddEmailUseCase
	VerifyEmail     commands.VerifyEmailUseCase
	SetPrimaryEmail commands.SetPrimaryEmailUseCase
	GetUser         queries.GetUserUseCase
	EmailExists     queries.EmailExistsUseCase

	Store *memory.Store
}

// Dependencies captures all runtime ports required by NewModule.
type Dependencies struct {
	Repository ports.Repository
	Hasher     ports.PasswordHasher
	Clock      ports.Clock
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		CreateUser: commands.CreateUserUseCase{
			Repository: deps.Repository,
			Hasher:     deps.Hasher,
			Logger:     deps.Logger,
		},
		UpdateStatus: commands.UpdateStatusUseCase{
			Repository: deps.Repository,
			Clock:      deps.Clock,
			Logger:     deps.Logger,
		},
		AddEmail: commands.AddEmailUseCase{
			Repository: deps.Repository,
			Logger:     deps.Logger,
		},
		VerifyEmail: commands.VerifyEmailUseCase{
			Repository: deps.Repository,
			Logger:     deps.Logger,
		},
		SetPrimaryEmail: commands.SetPrimaryEmailUseCase{
			Repository: deps.Repository,
			Logger:     deps.Logger,
		},
		GetUser: queries.GetUserUseCase{
			Repository: deps.Repository,
			Logger:     deps.Logger,
		},
		EmailExists: queries.EmailExistsUseCase{
			Repository: deps.Repository,
		},
	}
}

// NewInMemoryModule builds a development/testing module with in-memory
// persistence and the default hasher.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository: store,
		Hasher:     crypto.Argon2Hasher{},
		Clock:      postgresadapter.SystemClock{},
		Logger:     logger,
	})
	module.Store = store
	return module
}
