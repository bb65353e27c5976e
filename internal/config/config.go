// Package config loads the optional on-disk configuration of the shell.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const defaultSearchLimit = 1000

type Config struct {
	Prompt      string            `toml:"prompt"`
	SearchLimit int               `toml:"search_limit"`
	FindTrace   bool              `toml:"find_trace"`
	HistoryFile string            `toml:"history_file"`
	Aliases     map[string]string `toml:"aliases"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		Prompt:      "tbsh:%s$ ",
		SearchLimit: defaultSearchLimit,
		HistoryFile: filepath.Join(home, ".tbsh_history"),
		Aliases:     make(map[string]string),
	}
}

// DefaultPath returns the location Load reads from, under the user
// configuration directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "tbsh", "tbsh.toml")
}

func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom reads the configuration at path, returning the defaults when no
// file exists there.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = defaultSearchLimit
	}
	if cfg.Aliases == nil {
		cfg.Aliases = make(map[string]string)
	}
	return cfg, nil
}

// Save writes cfg at path, creating the parent directory when needed.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
