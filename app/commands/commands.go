// Package commands is the call surface the window's content layer binds
// against. Each method is invoked from the webview over the framework's
// binding layer.
package commands

import (
	"fmt"

	"github.com/exploitedtest/kb2midi/app/state"
	"github.com/exploitedtest/kb2midi/app/window"
)

// Service exposes shell operations to the content layer. It is registered
// with the application before the main window exists, so the orchestrator
// wires the dependencies in afterwards.
type Service struct {
	state *state.Store
	win   window.Window
}

// NewService returns an unwired Service, ready to be bound at application
// construction time.
func NewService() *Service {
	return &Service{}
}

// ServiceName identifies the service in the binding layer.
func (s *Service) ServiceName() string {
	return "kb2midi.commands"
}

// Wire attaches the shared state and the main window handle.
func (s *Service) Wire(st *state.Store, win window.Window) {
	s.state = st
	s.win = win
}

// ToggleAlwaysOnTop flips the shared flag and applies it to the window
// manager. The returned bool is the new flag value and is valid even when
// an error is returned: a failed window call does not roll the flag back,
// the caller decides how to surface the mismatch.
func (s *Service) ToggleAlwaysOnTop() (bool, error) {
	if s.state == nil || s.win == nil {
		return false, fmt.Errorf("main window is not ready")
	}

	onTop := s.state.ToggleAlwaysOnTop()
	if err := s.win.SetAlwaysOnTop(onTop); err != nil {
		return onTop, fmt.Errorf("failed to set always on top: %w", err)
	}
	return onTop, nil
}

// ShowWindow makes the main window visible and hands it input focus.
func (s *Service) ShowWindow() error {
	if s.win == nil {
		return fmt.Errorf("main window is not ready")
	}

	if err := s.win.Show(); err != nil {
		return fmt.Errorf("failed to show window: %w", err)
	}
	if err := s.win.Focus(); err != nil {
		return fmt.Errorf("failed to focus window: %w", err)
	}
	return nil
}
