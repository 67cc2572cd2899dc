// Package config loads fishcast settings from an optional YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds the forecast defaults. Every value can come from the
// config file or a FISHCAST_* environment variable.
type Config struct {
	Timezone string `yaml:"timezone" envconfig:"TIMEZONE"`
	Location string `yaml:"location" envconfig:"LOCATION"`
	Hours    int    `yaml:"hours" envconfig:"HOURS"`
	SeaLevel string `yaml:"sealevel" envconfig:"SEALEVEL"` // station name, empty disables sea level tracking
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Timezone: "Europe/Helsinki",
		Location: "Oulu",
		Hours:    48,
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join("data", "config.yaml")
	}
	return filepath.Join(dir, "fishcast", "config.yaml")
}

// Load reads the config file at path (DefaultPath when empty) and applies
// environment overrides. A missing file is not an error; the defaults
// are used.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := envconfig.Process("fishcast", &cfg); err != nil {
		return cfg, fmt.Errorf("reading environment overrides: %w", err)
	}

	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return cfg, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	return cfg, nil
}

// LoadTimezone resolves the configured timezone name.
func (c Config) LoadTimezone() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
