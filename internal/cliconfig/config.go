package cliconfig

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/groupsum/internal/adapters/fs"
	"github.com/bft-labs/groupsum/internal/adapters/output"
	"github.com/bft-labs/groupsum/internal/domain"
	"github.com/bft-labs/groupsum/pkg/groupsum"
)

// Config holds CLI configuration for groupsum.
type Config struct {
	// Input is the payload file; empty or "-" reads stdin.
	Input string

	TopK   int
	Strict bool
	Format string

	Watch    bool
	Debounce time.Duration

	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		TopK:     groupsum.DefaultTopK,
		Format:   output.FormatText,
		Debounce: domain.DefaultDebounce,
		LogLevel: zerolog.InfoLevel.String(),
	}
}

// Validate checks the configuration for errors.
// Returned errors match domain.ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.TopK < 1 {
		return invalid("top-k must be at least 1, got %d", c.TopK)
	}
	if !slices.Contains(output.Formats, c.Format) {
		return invalid("format must be one of %s, got %q", strings.Join(output.Formats, ", "), c.Format)
	}
	if _, err := c.Level(); err != nil {
		return invalid("log level %q: %v", c.LogLevel, err)
	}
	if c.Debounce <= 0 {
		return invalid("debounce must be positive, got %s", c.Debounce)
	}
	if c.Watch && (c.Input == "" || c.Input == fs.StdinName) {
		return invalid("watch requires an input file")
	}
	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error", ...).
func (c *Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, err
	}
	if lvl == zerolog.NoLevel {
		return zerolog.NoLevel, fmt.Errorf("empty level")
	}
	return lvl, nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Logger returns the base console logger writing to w (stderr in the
// command). The level is applied once configuration is loaded.
func Logger(w io.Writer) zerolog.Logger {
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(cw).With().Timestamp().Logger()
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value from a pointer if not nil and flag not changed.
// Out-of-range values are left for Validate to reject.
func (s *configSetter) setInt(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDuration sets a duration from a pointer if not nil and flag not changed.
func (s *configSetter) setDuration(flag string, value *time.Duration, dst *time.Duration) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDurationString parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDurationString(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	s.setDuration(flag, &d, dst)
	return nil
}
