// Package config loads the optional ferex configuration file.
//
// Configuration is flags-first: every field has a flag equivalent, and a
// missing config file (when no path was given) means pure defaults. The
// file exists so desktop installs can pin the data directory without
// wrapping the binary in a script.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the file omits a field.
const (
	DefaultListenAddr = "127.0.0.1:8573"
	DefaultLogLevel   = "info"
)

// Config holds process-level settings for the ferex shells.
type Config struct {
	// DataDir is the application data directory holding ferex.db.
	// Empty means the platform default (see DefaultDataDir).
	DataDir string `yaml:"data_dir"`

	// ListenAddr is the serve command's HTTP listen address.
	ListenAddr string `yaml:"listen_addr"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		ListenAddr: DefaultListenAddr,
		LogLevel:   DefaultLogLevel,
	}
}

// Load reads a YAML config file and applies defaults to omitted fields.
//
// An empty path returns Default() without touching the filesystem. A
// non-empty path that does not exist is an error: a caller who asked for
// a specific file should hear that it was not read.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// validate rejects values the shells cannot act on.
func (c Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q: must be debug, info, warn, or error", c.LogLevel)
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr must not be empty")
	}
	return nil
}

// DefaultDataDir resolves the platform's per-user data directory for
// ferex, mirroring where the desktop build keeps its database.
func DefaultDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, "ferex"), nil
}
