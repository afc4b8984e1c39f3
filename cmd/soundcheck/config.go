package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/bpbull/soundcheck-analytics/internal/gen"
)

// envConfig carries the environment-sourced defaults for flags that
// were not set on the command line.
type envConfig struct {
	Seed    int64
	Users   int
	Artists int
	Venues  int
	Tours   int
	Events  int
	OutDir  string
	DSN     string
}

func loadEnvConfig() (envConfig, error) {
	_ = godotenv.Load("config/local.env")

	defaults := gen.DefaultConfig()
	cfg := envConfig{
		Seed:    defaults.Seed,
		Users:   defaults.Users,
		Artists: defaults.Artists,
		Venues:  defaults.Venues,
		Tours:   defaults.Tours,
		Events:  defaults.Events,
		OutDir:  envOrDefault("SOUNDCHECK_OUT", "data"),
		DSN:     os.Getenv("DATABASE_URL"),
	}

	if raw := os.Getenv("SOUNDCHECK_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return envConfig{}, fmt.Errorf("parse SOUNDCHECK_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	for _, v := range []struct {
		key string
		dst *int
	}{
		{"SOUNDCHECK_USERS", &cfg.Users},
		{"SOUNDCHECK_ARTISTS", &cfg.Artists},
		{"SOUNDCHECK_VENUES", &cfg.Venues},
		{"SOUNDCHECK_TOURS", &cfg.Tours},
		{"SOUNDCHECK_EVENTS", &cfg.Events},
	} {
		raw := os.Getenv(v.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return envConfig{}, fmt.Errorf("parse %s: %w", v.key, err)
		}
		*v.dst = n
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
