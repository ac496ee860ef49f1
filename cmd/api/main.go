package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"janus/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load .env and config.
// 2) Build app wiring (ports + adapters + use cases), run migrations.
// 3) Prime the registry snapshot and consume reload notifications.
func main() {
	_ = godotenv.Load()

	app, err := bootstrap.Build()
	if err != nil {
		slog.Error("bootstrap failed", "error", err.Error())
		os.Exit(1)
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		slog.Error("app stopped with error", "error", err.Error())
		os.Exit(1)
	}
}
