package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr string     `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	SPADir   string     `env:"SPA_DIR" envDefault:"../web/dist"`
	// SeedDir replaces the embedded catalog with YAML files from disk.
	SeedDir          string `env:"SEED_DIR"`
	PassingThreshold int    `env:"PASSING_THRESHOLD" envDefault:"80"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.PassingThreshold < 1 || cfg.PassingThreshold > 100 {
		return nil, fmt.Errorf("PASSING_THRESHOLD must be between 1 and 100, got %d", cfg.PassingThreshold)
	}
	return &cfg, nil
}
