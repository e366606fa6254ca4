// Package lifecycle wires the shell together: configuration, logging, the
// single-instance gate, the shared state, the main window, the tray, and
// the command bindings. Startup order matters and lives in one place.
package lifecycle

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/ncruces/zenity"
	"github.com/wailsapp/wails/v3/pkg/application"
	"github.com/wailsapp/wails/v3/pkg/events"

	"github.com/exploitedtest/kb2midi/app/commands"
	"github.com/exploitedtest/kb2midi/app/instance"
	"github.com/exploitedtest/kb2midi/app/state"
	"github.com/exploitedtest/kb2midi/app/store"
	"github.com/exploitedtest/kb2midi/app/tray"
	"github.com/exploitedtest/kb2midi/app/window"
	"github.com/exploitedtest/kb2midi/internal/buildinfo"
	"github.com/exploitedtest/kb2midi/internal/config"
)

const (
	mainWindowName = "main"
	trayIconAsset  = "frontend/dist/appicon.png"
)

// windowSlot hands the single-instance gate a window that does not exist
// yet when the gate is installed. Activation callbacks arrive on the gate's
// own goroutine, so the slot is guarded.
type windowSlot struct {
	mu  sync.Mutex
	win window.Window
}

func (s *windowSlot) set(w window.Window) {
	s.mu.Lock()
	s.win = w
	s.mu.Unlock()
}

func (s *windowSlot) get() window.Window {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.win
}

// Run starts the shell and blocks until the application exits. A startup
// failure never returns: it is logged, surfaced in a dialog, and the
// process exits non-zero. A secondary launch never reaches the window
// setup; the single-instance gate forwards it and exits zero.
func Run(assets embed.FS) {
	cfg, err := config.Load(ConfigFile)
	if err != nil {
		fatal("failed to load configuration", err)
	}
	level, _ := cfg.SlogLevel() // validated during Load

	logger := InitLogging(level)
	defer CloseLogging()
	slog.Info("kb2midi app starting", "version", buildinfo.Short())

	// The gate fires before the window exists, so it resolves the window
	// through the slot at activation time.
	slot := &windowSlot{}
	svc := commands.NewService()

	app := application.New(application.Options{
		Name:        DisplayName,
		Description: "Play your computer keyboard as a MIDI controller",
		Services: []application.Service{
			application.NewService(svc),
		},
		Assets: application.AssetOptions{
			Handler: application.AssetFileServerFS(assets),
		},
		Logger:   logger,
		LogLevel: level,
		Mac: application.MacOptions{
			// The tray keeps the process alive while the window is hidden.
			ApplicationShouldTerminateAfterLastWindowClosed: false,
		},
		SingleInstance: instance.Options(slot.get),
	})

	st := state.New(true)

	webview := app.Window.NewWithOptions(application.WebviewWindowOptions{
		Name:   mainWindowName,
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Hidden: true,
		URL:    "/",
	})
	webview.Center()

	mainWindow := window.NewWails(app, webview)
	slot.set(mainWindow)
	svc.Wire(st, mainWindow)

	tracker := window.NewFocusTracker(mainWindow)
	webview.OnWindowEvent(events.Common.WindowFocus, func(*application.WindowEvent) {
		tracker.FocusChanged(true)
	})
	webview.OnWindowEvent(events.Common.WindowLostFocus, func(*application.WindowEvent) {
		tracker.FocusChanged(false)
	})
	// Closing the window hides it to the tray. Quitting goes through the
	// tray menu or the content layer.
	webview.RegisterHook(events.Common.WindowClosing, func(e *application.WindowEvent) {
		e.Cancel()
		webview.Hide()
	})

	if err := mainWindow.Show(); err != nil {
		fatal("failed to show main window", err)
	}

	icon, err := fs.ReadFile(assets, trayIconAsset)
	if err != nil {
		fatal("failed to load tray icon", err)
	}
	trayCtl := tray.New(st, mainWindow, app.Quit)
	tooltip := fmt.Sprintf("%s %s", DisplayName, buildinfo.Short())
	if err := trayCtl.Install(app, icon, tooltip); err != nil {
		fatal("failed to install system tray", err)
	}

	notifyFirstRun(store.New(SettingsFile))

	if err := app.Run(); err != nil {
		fatal("application stopped", err)
	}

	slog.Info("kb2midi app exiting")
}

// notifyFirstRun posts a one-time desktop notification so the user knows
// the app lives in the tray. Best effort.
func notifyFirstRun(settings *store.Store) {
	if settings.GetFirstTimeRun() {
		slog.Debug("not first time, skipping first run notification")
		return
	}

	slog.Info("first run", "install_id", settings.GetID())
	settings.SetFirstTimeRun(true)

	err := zenity.Notify(DisplayName+" is running in the system tray.",
		zenity.Title(DisplayName), zenity.InfoIcon)
	if err != nil {
		slog.Debug("failed to display first use notification", "error", err)
	}
}
