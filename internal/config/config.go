package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the askline configuration.
type Config struct {
	Prompt  string        `yaml:"prompt"`  // Marker written before each read
	History HistoryConfig `yaml:"history"` // Session recording settings
}

// HistoryConfig holds answer-history settings.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"` // Record questionnaire sessions
	DBPath  string `yaml:"db_path"` // Database path (overrides default)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Prompt: "> ",
		History: HistoryConfig{
			Enabled: true,
		},
	}
}

// Load loads configuration from the default path.
func Load() (*Config, error) {
	paths := DefaultPaths()
	return LoadFromFile(paths.ConfigFile())
}

// LoadFromFile loads configuration from the specified file.
// If the file doesn't exist, returns default configuration.
// Environment variable overrides are applied after file loading.
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.ApplyEnvOverrides()
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// ApplyEnvOverrides applies ASKLINE_* environment variables on top of the
// loaded configuration.
func (c *Config) ApplyEnvOverrides() {
	if prompt, ok := os.LookupEnv("ASKLINE_PROMPT"); ok {
		c.Prompt = prompt
	}
	if dbPath := os.Getenv("ASKLINE_HISTORY_DB"); dbPath != "" {
		c.History.DBPath = dbPath
	}
	if v := os.Getenv("ASKLINE_HISTORY_ENABLED"); v != "" {
		c.History.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if strings.ContainsAny(c.Prompt, "\n\r") {
		return fmt.Errorf("prompt must be a single line")
	}
	return nil
}

// Save saves the configuration to the default path.
func (c *Config) Save() error {
	paths := DefaultPaths()
	return c.SaveToFile(paths.ConfigFile())
}

// SaveToFile saves the configuration to the specified file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DatabasePath resolves the history database path, preferring the configured
// override.
func (c *Config) DatabasePath() string {
	if c.History.DBPath != "" {
		return c.History.DBPath
	}
	return DefaultPaths().DatabaseFile()
}
