package app

import (
	"os"
	"strconv"
)

// Config holds application-wide configuration.
type Config struct {
	// Debug enables debug logging and additional diagnostics
	Debug bool

	// SettingsPath overrides the settings file location. Empty uses the
	// platform config directory.
	SettingsPath string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:        false,
		SettingsPath: "",
	}
}

// ConfigFromEnv creates a configuration from environment variables.
// RESTDECK_DEBUG enables debug mode; RESTDECK_SETTINGS_PATH points the
// settings store at an explicit file.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()

	if debugStr := os.Getenv("RESTDECK_DEBUG"); debugStr != "" {
		if debug, err := strconv.ParseBool(debugStr); err == nil {
			cfg.Debug = debug
		}
	}

	if path := os.Getenv("RESTDECK_SETTINGS_PATH"); path != "" {
		cfg.SettingsPath = path
	}

	return cfg
}
