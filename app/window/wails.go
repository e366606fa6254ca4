package window

import (
	"github.com/wailsapp/wails/v3/pkg/application"
)

// wailsWindow adapts a webview window to the Window interface. Wails
// dispatches window calls onto the UI thread and does not report per-call
// platform failures, so the adapter's error results are nil in practice;
// the interface keeps the failure contract for tests and for any future
// backend that can fail.
type wailsWindow struct {
	app *application.App
	win *application.WebviewWindow
}

// NewWails wraps a webview window owned by app.
func NewWails(app *application.App, win *application.WebviewWindow) Window {
	return &wailsWindow{app: app, win: win}
}

func (w *wailsWindow) Show() error {
	w.win.Show()
	return nil
}

func (w *wailsWindow) Focus() error {
	w.win.Focus()
	return nil
}

func (w *wailsWindow) SetAlwaysOnTop(onTop bool) error {
	w.win.SetAlwaysOnTop(onTop)
	return nil
}

// Emit broadcasts an application event. With a single window this reaches
// exactly the content layer the window hosts.
func (w *wailsWindow) Emit(event string, payload any) error {
	w.app.Event.Emit(event, payload)
	return nil
}
