// Package config loads the CLI configuration from a YAML file. Missing files
// are not an error; defaults apply instead so first runs work out of the box.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DatabasePath string `yaml:"database_path"`
	WorkspaceID  string `yaml:"workspace_id"`
	UserID       string `yaml:"user_id"`
}

// DefaultPath is where Load looks when TEMPORA_CONFIG is unset.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tempora.yaml"
	}
	return filepath.Join(home, ".config", "tempora", "config.yaml")
}

// Load reads the config at path, falling back to defaults when the file does
// not exist. TEMPORA_DB overrides the database path regardless of the file.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if cfg.DatabasePath == "" {
		cfg.DatabasePath = defaultDatabasePath()
	}
	if override := os.Getenv("TEMPORA_DB"); override != "" {
		cfg.DatabasePath = override
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		WorkspaceID: "00000000-0000-4000-8000-000000000001",
		UserID:      "local",
	}
}

func defaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tempora.db"
	}
	return filepath.Join(home, ".local", "share", "tempora", "tempora.db")
}
