package lifecycle

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
)

// Names and paths shared across the shell. The path variables are resolved
// once at startup; tests never touch them because every component takes its
// paths explicitly.
var (
	AppName     = "kb2midi"
	DisplayName = "MIDI Controller"

	AppDataDir   = "."
	AppLogFile   = "kb2midi.log"
	ConfigFile   = "config.json"
	SettingsFile = "settings.json"
)

func init() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		slog.Warn("error discovering user config directory, using working directory", "error", err)
		return
	}

	AppDataDir = filepath.Join(configDir, AppName)
	AppLogFile = filepath.Join(AppDataDir, "app.log")
	ConfigFile = filepath.Join(AppDataDir, "config.json")
	SettingsFile = filepath.Join(AppDataDir, "settings.json")

	// Make sure our logging dir exists
	if _, err := os.Stat(AppDataDir); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(AppDataDir, 0o755); err != nil {
			slog.Error("create app data dir", "path", AppDataDir, "error", err)
		}
	}
}
