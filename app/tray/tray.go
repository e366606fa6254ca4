// Package tray owns the system tray icon and menu and routes tray
// interactions onto the shared state and the main window.
package tray

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/wailsapp/wails/v3/pkg/application"
	"github.com/wailsapp/wails/v3/pkg/icons"

	"github.com/exploitedtest/kb2midi/app/state"
	"github.com/exploitedtest/kb2midi/app/window"
)

// Menu entry identifiers. Handlers dispatch on these, never on labels, so
// labels can change without touching behavior.
const (
	MenuShow        = "show"
	MenuAlwaysOnTop = "always_on_top"
	MenuQuit        = "quit"
)

// Controller routes menu selections and clicks on the tray glyph. A tray
// interaction has no channel to report errors back through, so every
// window call here is best effort: failures are logged and swallowed.
type Controller struct {
	state *state.Store
	win   window.Window
	quit  func()
}

// New returns a Controller operating on the shared state and the main
// window. quit ends the application run loop.
func New(st *state.Store, win window.Window, quit func()) *Controller {
	return &Controller{state: st, win: win, quit: quit}
}

// HandleMenu dispatches one menu selection by identifier. Unknown
// identifiers are logged and ignored.
func (c *Controller) HandleMenu(id string) {
	switch id {
	case MenuShow:
		c.showWindow()
	case MenuAlwaysOnTop:
		onTop := c.state.ToggleAlwaysOnTop()
		if err := c.win.SetAlwaysOnTop(onTop); err != nil {
			// The flag stays flipped. State and window hint may disagree
			// until the next toggle.
			slog.Warn("failed to apply always-on-top", "value", onTop, "error", err)
		}
	case MenuQuit:
		slog.Info("quit requested from tray")
		c.quit()
	default:
		slog.Debug("unhandled tray menu item", "id", id)
	}
}

// HandleClick handles a left click on the tray glyph itself: same effect
// as the show entry. Right clicks open the menu and belong to the
// platform.
func (c *Controller) HandleClick() {
	c.showWindow()
}

func (c *Controller) showWindow() {
	if err := c.win.Show(); err != nil {
		slog.Debug("show window from tray", "error", err)
	}
	if err := c.win.Focus(); err != nil {
		slog.Debug("focus window from tray", "error", err)
	}
}

// Install creates the tray icon, builds the static menu, and binds the
// handlers. The menu never changes after this: entries stay enabled and
// keep their labels for the life of the process.
func (c *Controller) Install(app *application.App, icon []byte, tooltip string) error {
	if len(icon) == 0 {
		return fmt.Errorf("tray icon is empty")
	}

	systray := app.SystemTray.New()
	systray.SetTooltip(tooltip)
	systray.SetIcon(icon)
	systray.SetDarkModeIcon(icon)
	if runtime.GOOS == "darwin" {
		// Template icons follow the menu bar's light and dark appearance.
		systray.SetTemplateIcon(icons.SystrayMacTemplate)
	}

	menu := app.NewMenu()
	menu.Add("Show MIDI Controller").OnClick(func(*application.Context) {
		c.HandleMenu(MenuShow)
	})
	menu.Add("Always on Top").OnClick(func(*application.Context) {
		c.HandleMenu(MenuAlwaysOnTop)
	})
	menu.AddSeparator()
	menu.Add("Quit").SetAccelerator("CmdOrCtrl+Q").OnClick(func(*application.Context) {
		c.HandleMenu(MenuQuit)
	})
	systray.SetMenu(menu)

	// Left click acts on the window; the menu stays reachable through a
	// right click.
	systray.OnClick(c.HandleClick)
	systray.OnRightClick(systray.OpenMenu)

	return nil
}
