// Package config loads the optional engine configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the engine settings.
type Config struct {
	// Environment selects the logger profile: "production" or "local".
	Environment string `yaml:"environment"`
	// LogLevel overrides the profile's default level when set.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{Environment: "production"}
}

// Load reads the configuration from path, falling back to Default when the
// file does not exist. An unreadable or invalid file is a startup error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %q: %w", path, err)
	}

	if cfg.Environment == "" {
		cfg.Environment = Default().Environment
	}

	return cfg, nil
}
