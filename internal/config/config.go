// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Config holds everything cmd/server needs to start.
type Config struct {
	HTTPAddr       string        `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel       slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
	PresetsPath    string        `env:"PRESETS" envDefault:"presets/wheels.yaml"`
	TemplatesDir   string        `env:"TEMPLATES_DIR" envDefault:"templates"`
	StaticDir      string        `env:"STATIC_DIR" envDefault:"static"`
	SessionTTL     time.Duration `env:"SESSION_TTL" envDefault:"12h"`
	SpinDuration   time.Duration `env:"SPIN_DURATION" envDefault:"6s"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envSeparator:","`
	DefaultLang    string        `env:"DEFAULT_LANG" envDefault:"pt-BR"`
	OTelEndpoint   string        `env:"OTEL_ENDPOINT"`
	OTelEnabled    bool          `env:"OTEL_ENABLED" envDefault:"true"`
}

// Prefix is prepended to every variable name.
const Prefix = "ROLETA_"

// LoadDotEnv reads a .env file into the process environment. A missing file
// is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values the parser accepts but the server cannot use.
func (c Config) Validate() error {
	if c.SpinDuration <= 0 {
		return fmt.Errorf("%sSPIN_DURATION must be positive, got %s", Prefix, c.SpinDuration)
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("%sSESSION_TTL must not be negative, got %s", Prefix, c.SessionTTL)
	}
	if _, err := language.Parse(c.DefaultLang); err != nil {
		return fmt.Errorf("%sDEFAULT_LANG: %w", Prefix, err)
	}
	return nil
}

// TracingEnabled reports whether spans should be exported.
func (c Config) TracingEnabled() bool {
	return c.OTelEnabled && c.OTelEndpoint != ""
}
