// Package config loads user preferences from the config file and the
// environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Environment variables that override the config file
const (
	EnvLocale   = "FLUXO_LOCALE"
	EnvLogLevel = "FLUXO_LOG_LEVEL"
	EnvLogFile  = "FLUXO_LOG_FILE"
)

// Config holds the user preferences for fluxo
type Config struct {
	Locale        string `json:"locale"`
	LogLevel      string `json:"log_level"`
	LogFile       string `json:"log_file,omitempty"`
	CompactView   bool   `json:"compact_view"`
	Animations    bool   `json:"animations"`
	InviteBaseURL string `json:"invite_base_url"`
}

// Default returns the configuration used when no file exists
func Default() Config {
	return Config{
		Locale:        "en",
		LogLevel:      "info",
		Animations:    true,
		InviteBaseURL: "https://fluxozen.app",
	}
}

// DefaultConfigPath returns <user config dir>/fluxo/config.json
func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "fluxo", "config.json"), nil
}

// EnsureDir creates the directory that holds path
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}

// Load reads the config file at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return Config{}, err
	}

	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return config, nil
}

// ApplyEnv overrides fields with the FLUXO_* environment variables that are set
func ApplyEnv(cfg Config) Config {
	cfg.Locale = getEnv(EnvLocale, cfg.Locale)
	cfg.LogLevel = getEnv(EnvLogLevel, cfg.LogLevel)
	cfg.LogFile = getEnv(EnvLogFile, cfg.LogFile)
	return cfg
}

// Save writes cfg to path as indented JSON, creating the directory if needed
func Save(path string, cfg Config) error {
	if err := EnsureDir(path); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
