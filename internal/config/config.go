// Package config handles configuration loading and defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultDir      = "~/.taskwiz"
	DefaultDataDir  = "~/.taskwiz/tasks"
	DefaultOutput   = "human"
	DefaultLogLevel = "warn"
	configFileName  = "config.toml"
	configEnvVar    = "TASKWIZ_CONFIG"
)

// Config holds the settings for taskwiz.
type Config struct {
	DataDir  string `toml:"data_dir"`
	Output   string `toml:"output"`    // human or json
	LogLevel string `toml:"log_level"` // debug, info, warn, error

	// Path the config was read from (computed)
	Path string `toml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DataDir:  DefaultDataDir,
		Output:   DefaultOutput,
		LogLevel: DefaultLogLevel,
	}
}

// DefaultPath returns the config file location, honoring TASKWIZ_CONFIG.
func DefaultPath() string {
	if p := os.Getenv(configEnvVar); p != "" {
		return p
	}
	return filepath.Join(DefaultDir, configFileName)
}

// Load reads the config file at path over the defaults. A missing file
// is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	resolved, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	cfg.Path = resolved

	if _, err = toml.DecodeFile(resolved, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return finish(cfg)
		}
		return nil, fmt.Errorf("parse config %s: %w", resolved, err)
	}
	return finish(cfg)
}

func finish(cfg *Config) (*Config, error) {
	dir, err := ExpandHome(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	cfg.DataDir = dir
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Output {
	case "human", "json":
	default:
		return fmt.Errorf("invalid output %q (valid: human, json)", c.Output)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q (valid: debug, info, warn, error)", c.LogLevel)
	}
	if c.DataDir == "" {
		return errors.New("data_dir is empty")
	}
	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
