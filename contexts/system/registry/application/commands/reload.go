package commands

import (
	"context"
	"log/slog"

	application "janus/contexts/system/registry/application"
	"janus/contexts/system/registry/ports"
)

// ReloadUseCase rebuilds the published snapshot from storage. It is also run
// when a fanout notification arrives from a sibling process.
type ReloadUseCase struct {
	Catalog *application.Catalog
	Logger  *slog.Logger
}

func (u ReloadUseCase) Execute(ctx context.Context) error {
	return u.Catalog.Reload(ctx)
}

// refresh reloads the local snapshot and broadcasts the change. Mutations
// call it after committing so callers read their own writes. Fanout failure
// is logged but never fails the mutation that triggered it.
func refresh(ctx context.Context, catalog *application.Catalog, notifier ports.ReloadNotifier, logger *slog.Logger) error {
	if err := catalog.Reload(ctx); err != nil {
		return err
	}
	if notifier != nil {
		if err := notifier.NotifyReload(ctx); err != nil {
			application.ResolveLogger(logger).Warn("registry reload fanout failed",
				"event", "registry_fanout_failed",
				"module", "system/registry",
				"error", err.Error(),
			)
		}
	}
	return nil
}
