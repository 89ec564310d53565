// Package config resolves runtime settings from AAQ_* environment variables
// (a .env file in the working directory is loaded first) and validates them.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
)

// Config is the resolved runtime configuration. CLI flags override it.
type Config struct {
	DBPath   string         `validate:"required"`
	LogLevel string         `validate:"oneof=trace debug info warn error"`
	LogFile  string         `validate:"omitempty"`
	Bind     string         `validate:"omitempty,ip"`
	Port     int            `validate:"min=1,max=65535"`
	Timeouts *TimeoutConfig `validate:"required"`
}

const (
	DefaultDBPath   = "questions.db"
	DefaultLogLevel = "info"
	DefaultBind     = "127.0.0.1"
	DefaultPort     = 8080
)

// Load reads the AAQ_* environment into a validated Config.
func Load() (*Config, error) {
	settings, err := NewEnvSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}
	return FromSettings(settings)
}

// FromSettings builds a validated Config from any settings source.
func FromSettings(settings SettingsGetter) (*Config, error) {
	l := NewLoader(settings)

	cfg := &Config{
		DBPath:   l.String("db.path", DefaultDBPath),
		LogLevel: l.String("log.level", DefaultLogLevel),
		LogFile:  l.String("log.file", ""),
		Bind:     l.String("http.bind", DefaultBind),
		Port:     l.Int("http.port", DefaultPort),
		Timeouts: loadTimeouts(l),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config after flags have been applied.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
