// Package instance configures single-instance enforcement. Exactly one
// process owns the window and tray; any later launch hands its arguments
// and working directory to that process and exits without creating UI.
package instance

import (
	"log/slog"

	"github.com/wailsapp/wails/v3/pkg/application"

	"github.com/exploitedtest/kb2midi/app/window"
	"github.com/exploitedtest/kb2midi/internal/buildinfo"
)

// UniqueID names the systemwide exclusivity marker. Changing it would let
// two builds run side by side, so it stays fixed across versions.
const UniqueID = "com.exploitedtest.kb2midi"

// encryptionKey protects the activation payload exchanged between the
// primary and a secondary launch.
var encryptionKey = [32]byte{
	0x6b, 0x62, 0x32, 0x6d, 0x69, 0x64, 0x69, 0x21,
	0x51, 0x09, 0xe4, 0x3a, 0x8f, 0x27, 0xc1, 0x75,
	0x0d, 0xb8, 0x62, 0x94, 0x4e, 0xd3, 0x1c, 0xaa,
	0x39, 0xf0, 0x85, 0x5b, 0xe7, 0x2e, 0xc8, 0x16,
}

// Options returns the single-instance configuration for the application.
// The gate is installed before the main window exists, so the window is
// resolved through win at activation time rather than captured up front.
func Options(win func() window.Window) *application.SingleInstanceOptions {
	return &application.SingleInstanceOptions{
		UniqueID:      UniqueID,
		EncryptionKey: encryptionKey,
		// A secondary launch did its job by forwarding; it exits clean.
		ExitCode: 0,
		AdditionalData: map[string]string{
			"version": buildinfo.Version,
		},
		OnSecondInstanceLaunch: func(data application.SecondInstanceData) {
			Activate(win(), data)
		},
	}
}

// Activate handles a forwarded launch by revealing and focusing the
// existing window. No window is ever created here; a launch that races
// startup before the window exists is logged and dropped.
func Activate(win window.Window, data application.SecondInstanceData) {
	slog.Info("second instance forwarded",
		"args", data.Args,
		"cwd", data.WorkingDir,
		"version", data.AdditionalData["version"])

	if win == nil {
		slog.Warn("activation arrived before the main window exists")
		return
	}
	if err := win.Show(); err != nil {
		slog.Debug("show window on activation", "error", err)
	}
	if err := win.Focus(); err != nil {
		slog.Debug("focus window on activation", "error", err)
	}
}
