package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultTimeoutSeconds = 20

	// OutputText renders the verdict as aligned plain text.
	OutputText = "text"
	// OutputJSON renders the verdict as a JSON document.
	OutputJSON = "json"
)

// Config is the top-level configuration for relcheck.
type Config struct {
	TimeoutSeconds int    `yaml:"timeout_seconds"` // HTTP timeout for the release fetch
	Output         string `yaml:"output"`          // "text" or "json"
}

// Default returns the built-in configuration used when no file is present.
func Default() *Config {
	return &Config{
		TimeoutSeconds: defaultTimeoutSeconds,
		Output:         OutputText,
	}
}

// Timeout returns the fetch timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load reads and parses a configuration file on top of the defaults.
// Keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	cfg := Default()
	if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	if validateErr := validate(cfg); validateErr != nil {
		return nil, validateErr
	}

	return cfg, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".relcheck.yaml",
		".relcheck.yml",
		"relcheck.yaml",
		"relcheck.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// validate checks for supported configuration values.
func validate(cfg *Config) error {
	if cfg.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", cfg.TimeoutSeconds)
	}
	if cfg.Output != OutputText && cfg.Output != OutputJSON {
		return fmt.Errorf(
			"output must be %q or %q, got %q",
			OutputText, OutputJSON, cfg.Output,
		)
	}
	return nil
}
