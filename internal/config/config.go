// Package config holds the pipeloop command configuration: where to read
// the grid from, run limits, and logging.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// ValidLevels lists the accepted log levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// ValidFormats lists the accepted log encodings.
var ValidFormats = []string{"json", "console"}

// Config is the top-level configuration.
type Config struct {
	// Input is the grid file; "-" reads stdin.
	Input string `yaml:"input"`
	// MaxRounds bounds a run; 0 means unlimited.
	MaxRounds int `yaml:"max_rounds"`
	// Verify cross-checks the result against a sequential trace of the loop.
	Verify bool      `yaml:"verify"`
	Log    LogConfig `yaml:"log"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Input:     "inputs/day10.input",
		MaxRounds: 0,
		Verify:    false,
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input path is empty", ErrInvalid)
	}
	if c.MaxRounds < 0 {
		return fmt.Errorf("%w: max_rounds cannot be negative (%d)", ErrInvalid, c.MaxRounds)
	}
	if !slices.Contains(ValidLevels, c.Log.Level) {
		return fmt.Errorf("%w: log level %q (valid: %v)", ErrInvalid, c.Log.Level, ValidLevels)
	}
	if !slices.Contains(ValidFormats, c.Log.Format) {
		return fmt.Errorf("%w: log format %q (valid: %v)", ErrInvalid, c.Log.Format, ValidFormats)
	}
	return nil
}
