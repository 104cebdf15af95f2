// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all addrbook configuration.
type Config struct {
	REPL REPL `yaml:"repl"`
	Log  Log  `yaml:"log"`
}

// REPL holds interactive session settings.
type REPL struct {
	Prompt string `yaml:"prompt"`
	Plain  bool   `yaml:"plain"` // Force the line-based session even on a TTY.
}

// Log holds logger settings.
type Log struct {
	Level  string `yaml:"level"`  // "debug" | "info" | "warn" | "error"
	Format string `yaml:"format"` // "text" | "json"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		REPL: REPL{
			Prompt: ">>> ",
		},
		Log: Log{
			Level:  "warn",
			Format: "text",
		},
	}
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.REPL.Prompt == "" {
		return errors.New("config: repl.prompt cannot be empty")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: log.format must be \"text\" or \"json\", got %q", c.Log.Format)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: ADDRBOOK_PROMPT, ADDRBOOK_PLAIN, ADDRBOOK_LOG_LEVEL, ADDRBOOK_LOG_FORMAT.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("ADDRBOOK_PROMPT"); v != "" {
		c.REPL.Prompt = v
	}
	if v := os.Getenv("ADDRBOOK_PLAIN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid ADDRBOOK_PLAIN %q: %w", v, err)
		}
		c.REPL.Plain = b
	}
	if v := os.Getenv("ADDRBOOK_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("ADDRBOOK_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	REPL *rawREPL `yaml:"repl"`
	Log  *rawLog  `yaml:"log"`
}

type rawREPL struct {
	Prompt *string `yaml:"prompt"`
	Plain  *bool   `yaml:"plain"`
}

type rawLog struct {
	Level  *string `yaml:"level"`
	Format *string `yaml:"format"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.REPL != nil {
		if layer.REPL.Prompt != nil {
			c.REPL.Prompt = *layer.REPL.Prompt
		}
		if layer.REPL.Plain != nil {
			c.REPL.Plain = *layer.REPL.Plain
		}
	}
	if layer.Log != nil {
		if layer.Log.Level != nil {
			c.Log.Level = *layer.Log.Level
		}
		if layer.Log.Format != nil {
			c.Log.Format = *layer.Log.Format
		}
	}
}
