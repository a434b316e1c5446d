// Package config loads vetcards settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/abhisek/vetcards/internal/store"
)

// Environment values.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds all application configuration.
type Config struct {
	// DBPath is the SQLite database file.
	DBPath string `validate:"required"`

	// LogFile receives structured logs. The terminal UI owns stdout, so logs
	// never go there.
	LogFile string `validate:"required"`

	// LogLevel is one of debug, info, warn, error. Default: info.
	LogLevel string `validate:"oneof=debug info warn error"`

	// Environment selects the log encoder. Default: production.
	Environment string `validate:"oneof=development production"`
}

var validate = validator.New()

// Load builds a Config from VETCARDS_* environment variables. dbOverride,
// when non-empty, takes priority over VETCARDS_DB.
func Load(dbOverride string) (*Config, error) {
	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv("VETCARDS_LOG_LEVEL", "info")),
		Environment: strings.ToLower(getEnv("VETCARDS_ENV", EnvProduction)),
	}

	if dbOverride == "" {
		dbOverride = os.Getenv("VETCARDS_DB")
	}
	if dbOverride != "" {
		if err := store.EnsureDir(dbOverride); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
		cfg.DBPath = dbOverride
	} else {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		cfg.DBPath = p
	}

	cfg.LogFile = getEnv("VETCARDS_LOG_FILE", filepath.Join(filepath.Dir(cfg.DBPath), "vetcards.log"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// IsDevelopment reports whether the development environment is selected.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
