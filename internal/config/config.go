// Package config loads cubesim settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DirName is the settings directory under the user's home.
const DirName = ".gocube_lattice"

// Config holds cubesim settings.
type Config struct {
	// DBPath is the SQLite database for saved sessions.
	DBPath string `yaml:"db_path"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Simplify merges adjacent same-layer moves before they are stored or shown.
	Simplify bool `yaml:"simplify"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DBPath:   defaultDBPath(),
		LogLevel: "warn",
		Simplify: false,
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(DirName, "gocube.db")
	}
	return filepath.Join(home, DirName, "gocube.db")
}

// DefaultPath returns ~/.gocube_lattice/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, DirName, "config.yaml"), nil
}

// Load reads settings from path on top of the defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if c.DBPath == "" {
		return errors.New("db_path must not be empty")
	}
	return nil
}
