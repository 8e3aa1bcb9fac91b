// Package config loads the chessvalidator configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/0x5844/chessvalidator/internal/logging"
)

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Report formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// StdinInput is the input name that reads standard input.
const StdinInput = "-"

// Config holds all chessvalidator configuration.
type Config struct {
	// Inputs are the record files, "-" for stdin. Command line arguments
	// replace them.
	Inputs []string `yaml:"inputs"`
	// Output is the report path; empty or "-" writes to stdout. In
	// per-source mode it names a directory.
	Output string `yaml:"output"`
	// Format is text or yaml.
	Format string `yaml:"format"`
	// SVG is an optional path for an image of the claimed board.
	SVG string `yaml:"svg"`

	// PerSource validates each input as its own dataset.
	PerSource bool `yaml:"per_source"`
	// Workers bounds concurrent reads and datasets.
	Workers int `yaml:"workers"`
	// KeepFirstClaimant keeps the first claimant of a contested square.
	KeepFirstClaimant bool `yaml:"keep_first_claimant"`
	// SkipBlankLines drops empty input lines before parsing.
	SkipBlankLines bool `yaml:"skip_blank_lines"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Format:         FormatText,
		Workers:        4,
		SkipBlankLines: true,
		Logging:        LoggingConfig{Level: "info"},
	}
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// applyEnvOverrides applies CHESSVALIDATOR_* environment variables.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("CHESSVALIDATOR_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("CHESSVALIDATOR_FORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv("CHESSVALIDATOR_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: CHESSVALIDATOR_WORKERS=%q is not a number", ErrInvalidConfig, v)
		}
		c.Workers = n
	}
	return nil
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	var errs []error
	if len(c.Inputs) == 0 {
		errs = append(errs, errors.New("at least one input is required"))
	}
	stdin := 0
	for _, in := range c.Inputs {
		if in == StdinInput {
			stdin++
		}
	}
	if stdin > 1 {
		errs = append(errs, fmt.Errorf("stdin (%s) can be given as an input only once, got %d", StdinInput, stdin))
	}
	switch strings.ToLower(c.Format) {
	case FormatText, FormatYAML:
	default:
		errs = append(errs, fmt.Errorf("unknown format %q", c.Format))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", c.Workers))
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, err)
	}
	if c.PerSource && c.SVG != "" {
		errs = append(errs, errors.New("svg output needs a single dataset"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
