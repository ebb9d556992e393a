// Package config loads and validates the teamswatch configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the teamswatch CLI tool configuration.
type Configuration struct {
	// LogPath is the Teams log file to watch. Empty means the platform
	// default location, resolved by DefaultLogPath at startup.
	LogPath string `koanf:"log_path"`

	// PollInterval is the wait between checks for new log entries, in seconds.
	PollInterval float64 `koanf:"poll_interval" validate:"gt=0"`

	UseToast   bool `koanf:"use_toast"`
	UseSound   bool `koanf:"use_sound"`
	QuietReset bool `koanf:"quiet_reset"`

	// ToastDuration is how long a toast stays visible, in seconds.
	ToastDuration int `koanf:"toast_duration" validate:"min=1"`
}

// PollDuration returns the poll interval as a time.Duration.
func (c *Configuration) PollDuration() time.Duration {
	return time.Duration(c.PollInterval * float64(time.Second))
}

// Load loads configuration from global, local, and environment sources.
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	// Apply defaults first
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	// Load global config if it exists
	homeDir, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(homeDir, ".teamswatch", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	// Load local config if it exists
	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	// Override with environment variables (highest priority)
	k.Load(env.Provider("TEAMSWATCH_", ".", envTransform), nil)

	// Unmarshal into struct
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.LogPath = expandHomePath(cfg.LogPath)

	return &cfg, nil
}

// envTransform converts environment variable names to config keys
// Example: TEAMSWATCH_POLL_INTERVAL -> poll_interval
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "TEAMSWATCH_"))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
