// Package window wraps the main application window behind a narrow
// interface so the tray, the single-instance gate, and the content-layer
// commands never depend on the UI framework directly.
package window

import (
	"log/slog"
	"sync"
)

// Event names delivered to the window's content layer on focus
// transitions. The content layer subscribes to these by name.
const (
	EventAppFocus = "app-focus"
	EventAppBlur  = "app-blur"
)

// Window is the handle every component uses to drive the main window.
//
// Show and Focus fail when the underlying window is gone. SetAlwaysOnTop
// reports whether the window-manager hint was applied; callers decide what
// a failure means. Emit is fire-and-forget toward the content layer and
// failures carry no meaning beyond logging.
type Window interface {
	Show() error
	Focus() error
	SetAlwaysOnTop(onTop bool) error
	Emit(event string, payload any) error
}

// FocusTracker folds the platform's raw focus reports into logical
// transitions for the content layer. Window systems happily repeat
// focus-gained or focus-lost several times in a row; only an actual change
// of state emits an event.
type FocusTracker struct {
	mu      sync.Mutex
	focused bool
	win     Window
}

// NewFocusTracker returns a tracker for an initially unfocused window.
func NewFocusTracker(win Window) *FocusTracker {
	return &FocusTracker{win: win}
}

// FocusChanged records a focus report from the platform. On a transition
// it emits EventAppFocus or EventAppBlur toward the content layer;
// repeated reports of the current state are dropped. Emission is best
// effort.
func (t *FocusTracker) FocusChanged(focused bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.focused == focused {
		return
	}
	t.focused = focused

	event := EventAppBlur
	if focused {
		event = EventAppFocus
	}
	if err := t.win.Emit(event, nil); err != nil {
		slog.Debug("dropped focus notification", "event", event, "error", err)
	}
}

// Focused reports the last state the tracker saw.
func (t *FocusTracker) Focused() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.focused
}
