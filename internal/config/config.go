// Package config loads process-level settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

const appDirName = "scorebord"

// Config holds the few knobs the app has. Anything unset falls back to
// an OS-appropriate default.
type Config struct {
	DataDir  string `env:"SCOREBORD_DATA_DIR"`
	LogLevel string `env:"SCOREBORD_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment and fills in defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir()
	}
	return cfg, nil
}

// defaultDataDir returns an OS-appropriate writable directory.
func defaultDataDir() string {
	if d, err := os.UserConfigDir(); err == nil && d != "" {
		return filepath.Join(d, appDirName)
	}
	if h, err := os.UserHomeDir(); err == nil && h != "" {
		return filepath.Join(h, "."+appDirName)
	}
	return "."
}
