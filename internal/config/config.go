package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config is the process configuration, read once at startup. DBSource is
// optional: when empty the server runs on the in-memory ledger store.
type Config struct {
	DBSource string
	Port     string
	Env      string
	SeedDemo bool
}

func Load() (*Config, error) {
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	seedDemo := false
	if raw := os.Getenv("SEED_DEMO"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("SEED_DEMO must be a boolean, got %q", raw)
		}
		seedDemo = parsed
	}

	return &Config{
		DBSource: os.Getenv("DB_SOURCE"),
		Port:     port,
		Env:      env,
		SeedDemo: seedDemo,
	}, nil
}
