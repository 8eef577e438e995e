// Package config loads the application config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultHorizonDays is how far ahead occurrences are materialized when
// the config file does not say otherwise.
const DefaultHorizonDays = 90

// DefaultDailyTime is when the daemon extends the schedule each day.
const DefaultDailyTime = "06:00"

// Config is the application configuration, read from
// ~/.practice-app/config.yaml. A missing file yields the defaults.
type Config struct {
	DatabasePath string `yaml:"database_path"`
	HorizonDays  int    `yaml:"horizon_days"`
	DailyTime    string `yaml:"daily_time"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		HorizonDays: DefaultHorizonDays,
		DailyTime:   DefaultDailyTime,
	}
}

// Load reads the config file at path, falling back to defaults for any
// field the file leaves unset. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.HorizonDays < 1 {
		cfg.HorizonDays = DefaultHorizonDays
	}
	if cfg.DailyTime == "" {
		cfg.DailyTime = DefaultDailyTime
	}
	return cfg, nil
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".practice-app", "config.yaml"), nil
}
