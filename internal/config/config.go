// Package config loads application settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/Shivanand-hulikatti/volunteer-connect/internal/database"
)

// Seed sources.
const (
	SeedBuiltin  = "builtin"
	SeedFile     = "file"
	SeedPostgres = "postgres"
)

// Id strategies.
const (
	IDSequence = "sequence"
	IDUUID     = "uuid"
)

// Config holds all configuration for the application.
type Config struct {
	Environment string `env:"GO_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Port        string `env:"PORT" envDefault:"8080"`

	SeedSource string          `env:"SEED_SOURCE" envDefault:"builtin"`
	SeedFile   string          `env:"SEED_FILE"`
	DB         database.Config `envPrefix:"DB_"`

	IDStrategy          string `env:"ID_STRATEGY" envDefault:"sequence"`
	AllowOrganizerJoins bool   `env:"ALLOW_ORGANIZER_JOINS" envDefault:"false"`
	NotificationBuffer  int    `env:"NOTIFICATION_BUFFER" envDefault:"50"`
	EnableMetrics       bool   `env:"ENABLE_METRICS" envDefault:"true"`
}

// Load reads configuration from the environment. Outside production a .env
// file in the working directory is loaded first if present; variables
// already set take precedence.
func Load() (*Config, error) {
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.SeedSource {
	case SeedBuiltin, SeedPostgres:
	case SeedFile:
		if c.SeedFile == "" {
			return errors.New("SEED_FILE is required when SEED_SOURCE=file")
		}
	default:
		return fmt.Errorf("unknown SEED_SOURCE %q", c.SeedSource)
	}
	switch c.IDStrategy {
	case IDSequence, IDUUID:
	default:
		return fmt.Errorf("unknown ID_STRATEGY %q", c.IDStrategy)
	}
	if c.NotificationBuffer < 1 {
		return fmt.Errorf("NOTIFICATION_BUFFER must be positive, got %d", c.NotificationBuffer)
	}
	return nil
}
