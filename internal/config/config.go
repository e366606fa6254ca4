// Package config loads the optional shell configuration: the main window
// descriptor and the logging verbosity.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// WindowConfig is the declarative descriptor the main window is created
// from. The window starts hidden regardless; the tray reveals it.
type WindowConfig struct {
	Title  string `json:"title"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// AppConfig holds values loaded from config.json, with defaults applied
// for anything the file leaves out.
type AppConfig struct {
	Window   WindowConfig `json:"window"`
	LogLevel string       `json:"log_level"`
}

// Default returns the built-in configuration used when no config file
// exists.
func Default() AppConfig {
	return AppConfig{
		Window: WindowConfig{
			Title:  "MIDI Controller",
			Width:  480,
			Height: 640,
		},
		LogLevel: "info",
	}
}

// Load reads the configuration file at filePath, parses it over the
// defaults, and validates the result. A missing file is not an error, the
// defaults apply; a file that exists but cannot be parsed or validated is.
func Load(filePath string) (AppConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Debug("no config file, using defaults", "filePath", filePath)
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file '%s': %w", filePath, err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}

	if cfg.Window.Title == "" {
		cfg.Window.Title = Default().Window.Title
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return cfg, fmt.Errorf("config file '%s' has a non-positive window size (%dx%d)", filePath, cfg.Window.Width, cfg.Window.Height)
	}
	if _, err := cfg.SlogLevel(); err != nil {
		return cfg, fmt.Errorf("config file '%s': %w", filePath, err)
	}

	return cfg, nil
}

// SlogLevel maps the configured level name onto a slog level. An empty
// name means info.
func (c AppConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level '%s'", c.LogLevel)
	}
}
