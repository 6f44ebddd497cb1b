// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultStoreFile = "tasks.json"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds the full configuration for tasktrack. The command-line
// surface is purely positional, so everything here comes from config files;
// there are no flags and no environment variables.
type Config struct {
	// Paths
	StoreFile  string `toml:"store_file"`
	SchemaFile string `toml:"schema_file"`

	// StrictValidate turns schema violations in the store into hard errors
	// instead of log warnings.
	StrictValidate bool `toml:"strict_validate"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
}

// Load loads configuration from sources in priority order:
// 1. Defaults
// 2. User config file (OS-specific config dir, tasktrack/tasktrack.toml)
// 3. Project config file (tasktrack.toml or .tasktrack.toml in the
//    working directory)
func Load() (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if path := findUserConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", path, err)
		}
	}
	if path := findProjectConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", path, err)
		}
	}

	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.StoreFile = DefaultStoreFile
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}

// loadConfigFile loads TOML config from the given file.
func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

func findUserConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, "tasktrack", "tasktrack.toml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func findProjectConfigFile() string {
	for _, name := range []string{"tasktrack.toml", ".tasktrack.toml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}
