// Package config loads server settings from an optional TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"taskwidget/internal/models"
)

// Config holds all configuration options for the widget server.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Log     LogConfig     `toml:"log"`
	Journal JournalConfig `toml:"journal"`
	Display DisplayConfig `toml:"display"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port string `toml:"port"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level      string `toml:"level"`  // debug, info, warn, error
	Format     string `toml:"format"` // text, json, logfmt
	Timestamps bool   `toml:"timestamps"`
}

// JournalConfig controls the SQLite diagnostic journal. An empty path
// disables it.
type JournalConfig struct {
	Path string `toml:"path"`
}

// DisplayConfig holds rendering defaults.
type DisplayConfig struct {
	TimeLayout      string `toml:"time_layout"`
	DefaultPriority string `toml:"default_priority"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Server: ServerConfig{Port: "8080"},
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			Timestamps: true,
		},
		Display: DisplayConfig{
			TimeLayout:      "1/2/2006, 3:04:05 PM",
			DefaultPriority: string(models.PriorityMedium),
		},
	}
}

// Load reads defaults, then the TOML file at path (if path is not empty),
// then environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.Port = getEnv("TASKWIDGET_PORT", c.Server.Port)
	c.Log.Level = getEnv("TASKWIDGET_LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("TASKWIDGET_LOG_FORMAT", c.Log.Format)
	c.Journal.Path = getEnv("TASKWIDGET_JOURNAL_PATH", c.Journal.Path)
}

// Validate checks that the configuration can be used to start the server.
func (c Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("server port is required")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	switch c.Log.Format {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}

	if !models.Priority(c.Display.DefaultPriority).Valid() {
		return fmt.Errorf("default priority must be 'Low', 'Medium', or 'High', got %q", c.Display.DefaultPriority)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
