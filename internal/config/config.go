// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Catalog is the path to a CSV career catalog. Empty means the embedded
	// default catalog.
	Catalog string `json:"catalog,omitempty"`

	// TopN is the number of matches returned per analysis.
	TopN int `json:"top_n,omitempty"`

	// Port is the HTTP API listen port.
	Port int `json:"port,omitempty"`

	// Verbose prints score breakdowns alongside results.
	Verbose bool `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.TopN < 0 {
		return fmt.Errorf("top_n must be non-negative, got %d", c.TopN)
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port must be in [0,65535], got %d", c.Port)
	}
	if c.Catalog != "" {
		if _, err := os.Stat(c.Catalog); err != nil {
			return fmt.Errorf("catalog file not accessible: %w", err)
		}
	}
	return nil
}
