package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"

	directory "janus/contexts/identity/directory"
	directorycrypto "janus/contexts/identity/directory/adapters/crypto"
	directorypostgres "janus/contexts/identity/directory/adapters/postgres"
	organisations "janus/contexts/identity/organisations"
	organisationspostgres "janus/contexts/identity/organisations/adapters/postgres"
	sessions "janus/contexts/identity/sessions"
	sessionspostgres "janus/contexts/identity/sessions/adapters/postgres"
	registry "janus/contexts/system/registry"
	registryevents "janus/contexts/system/registry/adapters/events"
	registrypostgres "janus/contexts/system/registry/adapters/postgres"
	"janus/internal/platform/config"
	"janus/internal/platform/db"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type App struct {
	Directory     directory.Module
	Sessions      sessions.Module
	Registry      registry.Module
	Organisations organisations.Module

	postgres   *db.Postgres
	redis      *redis.Client
	subscriber *registryevents.Subscriber
	logger     *slog.Logger
}

func Build() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName)
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN, db.Options{
		Logger:     logger,
		LogQueries: cfg.LogSQL,
	})
	if err != nil {
		return nil, err
	}
	if cfg.RunMigrations {
		if err := db.Migrate(pg, logger); err != nil {
			pg.Close()
			return nil, err
		}
	}

	app := &App{
		postgres: pg,
		logger:   logger,
	}

	app.Directory = directory.NewModule(directory.Dependencies{
		Repository: directorypostgres.NewRepository(pg.DB, logger),
		Hasher:     directorycrypto.Argon2Hasher{},
		Clock:      directorypostgres.SystemClock{},
		Logger:     logger,
	})
	app.Sessions = sessions.NewModule(sessions.Dependencies{
		Repository:  sessionspostgres.NewRepository(pg.DB, logger),
		Clock:       sessionspostgres.SystemClock{},
		IDGenerator: sessionspostgres.UUIDGenerator{},
		Logger:      logger,
	})
	app.Organisations = organisations.NewModule(organisations.Dependencies{
		Repository: organisationspostgres.NewRepository(pg.DB, logger),
		Logger:     logger,
	})

	registryDeps := registry.Dependencies{
		Repository: registrypostgres.NewRepository(pg.DB, logger),
		Logger:     logger,
	}
	if strings.TrimSpace(cfg.RedisURL) != "" {
		client, err := db.ConnectRedis(cfg.RedisURL)
		if err != nil {
			pg.Close()
			return nil, err
		}
		app.redis = client
		registryDeps.Notifier = registryevents.NewRedisNotifier(client)
	}
	app.Registry = registry.NewModule(registryDeps)

	if app.redis != nil {
		app.subscriber = registryevents.NewSubscriber(app.redis, app.Registry.Reload.Execute, logger)
	}
	return app, nil
}

// Run primes the registry snapshot and, when Redis is configured, blocks
// consuming reload notifications until the context is cancelled.
func (a *App) Run(ctx context.Context) error {
	if err := a.Registry.Reload.Execute(ctx); err != nil {
		return err
	}

	a.logger.Info("app started",
		"event", "bootstrap_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
	)

	if a.subscriber != nil {
		return a.subscriber.Run(ctx)
	}
	<-ctx.Done()
	return nil
}

func (a *App) Close() error {
	var errs []error
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	if a.postgres != nil {
		errs = append(errs, a.postgres.Close())
	}
	return errors.Join(errs...)
}
