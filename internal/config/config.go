// Package config provides configuration management for tagmark.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/tagmark/pkg/tagmark"
)

// Config holds the tagmark configuration.
type Config struct {
	Flavor       string `yaml:"flavor,omitempty"`
	Strict       bool   `yaml:"strict,omitempty"`
	NoColor      bool   `yaml:"no_color,omitempty"`
	MaxDepth     int    `yaml:"max_depth,omitempty"`
	OutputFormat string `yaml:"output_format,omitempty"`
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.Flavor != "" {
		if _, err := tagmark.ParseFlavor(c.Flavor); err != nil {
			return err
		}
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must be non-negative, got %d", c.MaxDepth)
	}
	switch c.OutputFormat {
	case "", "table", "json", "plain", "yaml":
	default:
		return fmt.Errorf("unknown output format %q", c.OutputFormat)
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if flavor := os.Getenv("TAGMARK_FLAVOR"); flavor != "" {
		c.Flavor = flavor
	}
	if strict := os.Getenv("TAGMARK_STRICT"); strict != "" {
		if v, err := strconv.ParseBool(strict); err == nil {
			c.Strict = v
		}
	}
	if noColor := os.Getenv("TAGMARK_NO_COLOR"); noColor != "" {
		if v, err := strconv.ParseBool(noColor); err == nil {
			c.NoColor = v
		}
	}
	if depth := os.Getenv("TAGMARK_MAX_DEPTH"); depth != "" {
		if v, err := strconv.Atoi(depth); err == nil {
			c.MaxDepth = v
		}
	}
	if format := os.Getenv("TAGMARK_OUTPUT"); format != "" {
		c.OutputFormat = format
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "tagmark", "config.yml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".tagmark", "config.yml")
	}

	return filepath.Join(home, ".config", "tagmark", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		// If file doesn't exist, start with empty config
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}

// Builder returns an engine builder preconfigured with the config's
// baseline; callers layer command-line overrides on top before Build.
func (c *Config) Builder() (*tagmark.Builder, error) {
	b := tagmark.NewBuilder()

	if c.Flavor != "" {
		flavor, err := tagmark.ParseFlavor(c.Flavor)
		if err != nil {
			return nil, err
		}
		b.Markdown(flavor)
	}
	if c.Strict {
		b.Strict()
	}
	if c.MaxDepth > 0 {
		b.MaxDepth(c.MaxDepth)
	}

	return b, nil
}
