// Package config loads the statekit demo configuration from TOML or
// YAML files, with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "STATEKIT_"

// Common configuration errors.
var (
	ErrUnknownFormat   = errors.New("config: unknown file format")
	ErrInvalidCapacity = errors.New("config: history.capacity must be at least 1")
	ErrInvalidReload   = errors.New("config: reload.debounce must not be negative")
)

// HistoryConfig configures the demo's history container.
type HistoryConfig struct {
	// Capacity is the maximum number of retained entries.
	Capacity int `toml:"capacity" yaml:"capacity"`

	// Initial is the value the container starts with.
	Initial string `toml:"initial" yaml:"initial"`
}

// LoggingConfig configures the demo's logger.
type LoggingConfig struct {
	// Level is the minimum level: debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`

	// File is the log file path. Empty disables logging.
	File string `toml:"file" yaml:"file"`
}

// Duration is a time.Duration that unmarshals from strings like
// "250ms" in both TOML and YAML.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler (used by TOML).
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// String returns the duration in time.Duration notation.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// ReloadConfig configures config live reload.
type ReloadConfig struct {
	// Enabled turns file watching on.
	Enabled bool `toml:"enabled" yaml:"enabled"`

	// Debounce is how long the file must stay quiet before a reload.
	Debounce Duration `toml:"debounce" yaml:"debounce"`
}

// Config is the demo application configuration.
type Config struct {
	History HistoryConfig `toml:"history" yaml:"history"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	Reload  ReloadConfig  `toml:"reload" yaml:"reload"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		History: HistoryConfig{
			Capacity: 10,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Reload: ReloadConfig{
			Enabled:  true,
			Debounce: Duration(250 * time.Millisecond),
		},
	}
}

// Load reads the file at path over the defaults, then applies
// environment overrides. A missing file is not an error; the defaults
// and environment still apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if c.History.Capacity < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, c.History.Capacity)
	}
	if c.Reload.Debounce < 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidReload, c.Reload.Debounce)
	}
	return nil
}

// loadFile unmarshals path into cfg, picking the format by extension.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	switch filepath.Ext(path) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	return nil
}

// applyEnv applies STATEKIT_* environment overrides.
// Malformed values are ignored; the file/default value stands.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvPrefix + "CAPACITY"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.History.Capacity = n
		}
	}
	if v, ok := os.LookupEnv(EnvPrefix + "INITIAL"); ok {
		cfg.History.Initial = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_LEVEL"); ok {
		cfg.Logging.Level = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_FILE"); ok {
		cfg.Logging.File = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "RELOAD_DEBOUNCE"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Reload.Debounce = Duration(d)
		}
	}
}
