// Package state holds the mutable flags shared between the tray, the
// window callbacks, and the content-layer commands.
package state

import "sync"

// Store is the single cell of shared application state. Every reader and
// writer goes through the mutex; the tray thread, the binding layer, and
// window callbacks all touch it concurrently.
//
// The always-on-top flag is process state only. It resets to its initial
// value on every launch and is never persisted.
type Store struct {
	mu          sync.Mutex
	alwaysOnTop bool
}

// New returns a Store with the given initial always-on-top value.
func New(alwaysOnTop bool) *Store {
	return &Store{alwaysOnTop: alwaysOnTop}
}

// ToggleAlwaysOnTop atomically flips the flag and returns the new value.
func (s *Store) ToggleAlwaysOnTop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alwaysOnTop = !s.alwaysOnTop
	return s.alwaysOnTop
}

// AlwaysOnTop reports the current flag value.
func (s *Store) AlwaysOnTop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alwaysOnTop
}
