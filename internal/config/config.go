package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the flat trid configuration
type Config struct {
	DefaultCount int    `json:"default_count,omitempty"` // ids printed by 'generate' with no count
	LogLevel     string `json:"log_level,omitempty"`     // trace, debug, info, warn, error, off
	LogPretty    bool   `json:"log_pretty,omitempty"`
	LedgerPath   string `json:"ledger_path,omitempty"` // defaults to ~/.trid/trid.db
	NoColor      bool   `json:"no_color,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		DefaultCount: 1,
		LogLevel:     "warn",
	}
}

// LoadConfig reads .trid/config.json from the specified directory.
// A missing file yields Default(); fields absent from the file keep their
// default values.
func LoadConfig(dir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(dir, ".trid", "config.json")
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.DefaultCount < 1 {
		return nil, fmt.Errorf("invalid config: default_count must be at least 1 (got %d)", cfg.DefaultCount)
	}

	return cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	tridDir := filepath.Join(dir, ".trid")
	if err := os.MkdirAll(tridDir, 0755); err != nil {
		return fmt.Errorf("failed to create .trid dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(tridDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
