// Package config loads labellog settings from a TOML file.
//
// A file sets registry-wide defaults and may pre-declare loggers so that
// their options are fixed before any code requests them:
//
//	environment = "dev"
//	level = "info"
//	timestamp_format = "2006-01-02 03:04:05.000"
//
//	[[loggers]]
//	category = "svc"
//	callee = "worker"
//	colorize = false
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/philipp01105/labellog/logger"
	"github.com/philipp01105/labellog/registry"
)

// Config is the file-level configuration
type Config struct {
	// Environment applies to every logger that does not set its own
	Environment string `toml:"environment,omitempty" validate:"omitempty,printascii,max=64"`
	// Colorize applies to every logger that does not set its own
	Colorize *bool `toml:"colorize,omitempty"`
	// Level is the minimum level of built loggers (default: silly)
	Level string `toml:"level,omitempty" validate:"omitempty,level"`
	// TimestampFormat is a Go time layout (default: formatter.TimestampLayout)
	TimestampFormat string `toml:"timestamp_format,omitempty"`
	// Loggers are built eagerly by Apply
	Loggers []LoggerConfig `toml:"loggers,omitempty" validate:"dive"`
}

// LoggerConfig pre-declares one logger
type LoggerConfig struct {
	Category    string `toml:"category" validate:"required"`
	Callee      string `toml:"callee,omitempty"`
	Colorize    *bool  `toml:"colorize,omitempty"`
	Environment string `toml:"environment,omitempty" validate:"omitempty,printascii,max=64"`
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(content)
}

// Parse decodes and validates TOML configuration.
func Parse(content []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(content, &cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("failed to parse config at line %d, column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Write encodes cfg as TOML.
func (c *Config) Write(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(c)
}

// RegistryConfig returns the registry configuration described by c.
func (c *Config) RegistryConfig(w io.Writer) registry.Config {
	return registry.Config{
		Writer:          w,
		TimestampFormat: c.TimestampFormat,
		Level:           logger.ParseLevel(c.Level),
	}
}

// Options returns the default options described by c.
func (c *Config) Options() *registry.Options {
	return &registry.Options{
		Colorize:    c.Colorize,
		Environment: c.Environment,
	}
}

// options merges a logger entry over the file-level defaults.
func (c *Config) options(lc LoggerConfig) *registry.Options {
	opts := c.Options()
	if lc.Colorize != nil {
		opts.Colorize = lc.Colorize
	}
	if lc.Environment != "" {
		opts.Environment = lc.Environment
	}
	return opts
}

// Apply builds every pre-declared logger in reg. Loggers that reg already
// holds keep their original options.
func (c *Config) Apply(reg *registry.Registry) {
	for _, lc := range c.Loggers {
		reg.GetLabeledInstance(lc.Category, lc.Callee, c.options(lc))
	}
}
