package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config holds persisted application settings. The core never reads
// this directly; values are injected where needed so the core stays
// testable in isolation.
type Config struct {
	// FlattenSubfolders shows descendant folders' bookmarks when a
	// folder is selected.
	FlattenSubfolders bool `json:"flattenSubfolders"`

	// ViewMode is the preferred bookmark rendering ("list" or "cards").
	ViewMode string `json:"viewMode"`

	// Theme is the preferred color theme ("dark" or "light").
	Theme string `json:"theme"`

	// APIKey unlocks mutations. Empty = read-only session.
	APIKey string `json:"apiKey"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		FlattenSubfolders: false,
		ViewMode:          "list",
		Theme:             "dark",
	}
}

// LoadConfig reads config from the JSON file.
// Creates the file with defaults if it doesn't exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			// Create the config file with defaults
			if saveErr := SaveConfig(path, &config); saveErr != nil {
				// Non-fatal: return defaults even if save fails
				return &config, nil
			}
			return &config, nil
		}
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Apply defaults for missing fields
	defaults := DefaultConfig()
	if config.ViewMode == "" {
		config.ViewMode = defaults.ViewMode
	}
	if config.Theme == "" {
		config.Theme = defaults.Theme
	}

	return &config, nil
}

// SaveConfig writes config to the JSON file.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfigFilePath returns the default config path: ~/.config/hoard/config.json
func DefaultConfigFilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "hoard", "config.json"), nil
}
