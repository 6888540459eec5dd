// ABOUTME: Tracker configuration: data paths, seeding defaults, user profile.
// ABOUTME: JSON config file under XDG config, with SPORHOCAM_* env overrides.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/sporhocam/sporhocam/internal/models"
	"github.com/sporhocam/sporhocam/internal/storage"
)

// SeedConfig holds the defaults for the seeding pipeline.
type SeedConfig struct {
	// BatchSize bounds how many records accumulate before a flush.
	BatchSize int `json:"batch_size,omitempty" envconfig:"BATCH_SIZE"`
	// Curated limits exercise import to the per-category quotas.
	Curated bool `json:"curated,omitempty" envconfig:"CURATED"`
}

// Config stores tracker configuration.
type Config struct {
	// DataDir is the root directory for data storage; sporhocam.db lives
	// here. Supports ~ expansion. Defaults to ~/.local/share/sporhocam.
	DataDir string `json:"data_dir,omitempty" envconfig:"DATA_DIR"`

	// Seed holds seeding pipeline defaults.
	Seed SeedConfig `json:"seed,omitempty"`

	// Profile holds the user attributes for the metric calculators.
	Profile models.Profile `json:"profile,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage opens the SQLite store under the configured data directory.
func (c *Config) OpenStorage() (storage.Repository, error) {
	dbPath := filepath.Join(c.GetDataDir(), storage.DBFileName)
	return storage.Open(dbPath)
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "sporhocam", "config.json")
}

// Load reads config from disk, then applies SPORHOCAM_* environment
// overrides on top of the file values.
func Load() (*Config, error) {
	path := GetConfigPath()

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No config file yet: env overrides on top of zero values.
	case err != nil:
		return nil, err
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := envconfig.Process("sporhocam", &cfg); err != nil {
		return nil, fmt.Errorf("environment overrides: %w", err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
