package cliconfig

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment variable read by groupsum.
const EnvPrefix = "GROUPSUM_"

// EnvConfig holds the GROUPSUM_* environment variables. Pointer fields stay
// nil when the variable is unset.
type EnvConfig struct {
	Input    string         `env:"INPUT"`
	TopK     *int           `env:"TOP_K"`
	Strict   *bool          `env:"STRICT"`
	Format   string         `env:"FORMAT"`
	Watch    *bool          `env:"WATCH"`
	Debounce *time.Duration `env:"DEBOUNCE"`
	LogLevel string         `env:"LOG_LEVEL"`
}

// LoadEnvConfig parses the environment.
// Returns an error if any variable has an invalid format.
func LoadEnvConfig() (EnvConfig, error) {
	var ec EnvConfig
	if err := env.ParseWithOptions(&ec, env.Options{Prefix: EnvPrefix}); err != nil {
		return EnvConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return ec, nil
}

// ApplyEnvConfig applies configuration from environment variables (GROUPSUM_*).
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	ec, err := LoadEnvConfig()
	if err != nil {
		return err
	}
	applyEnv(cfg, ec, changed)
	return nil
}

func applyEnv(cfg *Config, ec EnvConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("input", ec.Input, &cfg.Input)
	s.setString("format", ec.Format, &cfg.Format)
	s.setString("log-level", ec.LogLevel, &cfg.LogLevel)

	s.setInt("top", ec.TopK, &cfg.TopK)

	s.setBool("strict", ec.Strict, &cfg.Strict)
	s.setBool("watch", ec.Watch, &cfg.Watch)

	s.setDuration("debounce", ec.Debounce, &cfg.Debounce)
}
