package config

import (
	"os"
	"strconv"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	PostgresDSN string
	RedisURL    string

	// LogSQL enables the debug-level query logger on the primary database.
	LogSQL bool

	// RunMigrations applies pending schema migrations on startup.
	RunMigrations bool
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "janus"
	}

	return Config{
		ServiceName:   service,
		PostgresDSN:   os.Getenv("POSTGRES_DSN"),
		RedisURL:      os.Getenv("REDIS_URL"),
		LogSQL:        envBool("LOG_SQL", false),
		RunMigrations: envBool("RUN_MIGRATIONS", true),
	}, nil
}

func envBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return value
}
