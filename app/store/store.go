// Package store persists the small set of shell settings that survive a
// restart: the install identifier and the first-run marker. Window state
// such as the always-on-top flag is deliberately absent; it resets every
// launch.
package store

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

type settings struct {
	ID           string `json:"id"`
	FirstTimeRun bool   `json:"first-time-run"`
}

// Store reads and writes the settings file. Loading is lazy: the file is
// touched on first access, and a missing or corrupt file is replaced with
// a fresh one.
type Store struct {
	lock   sync.Mutex
	path   string
	data   settings
	loaded bool
}

// New returns a Store backed by the settings file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// GetID returns the stable install identifier, creating it on first use.
func (s *Store) GetID() string {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.load()
	return s.data.ID
}

// GetFirstTimeRun reports whether the first-run notification was already
// shown.
func (s *Store) GetFirstTimeRun() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.load()
	return s.data.FirstTimeRun
}

// SetFirstTimeRun records the first-run marker. Writing is best effort; a
// failure means the user sees the notification again next launch.
func (s *Store) SetFirstTimeRun(val bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.load()
	if s.data.FirstTimeRun == val {
		return
	}
	s.data.FirstTimeRun = val
	s.write()
}

func (s *Store) load() {
	if s.loaded {
		return
	}
	s.loaded = true

	settingsFile, err := os.Open(s.path)
	if err == nil {
		defer settingsFile.Close()
		if err = json.NewDecoder(settingsFile).Decode(&s.data); err == nil {
			if s.data.ID != "" {
				slog.Debug("loaded existing settings", "path", s.path, "id", s.data.ID)
				return
			}
			slog.Warn("settings file is missing an id, creating a new one", "path", s.path)
		} else {
			// Decoding failed, file is likely corrupt
			slog.Warn("failed to decode settings file, creating a new one", "path", s.path, "error", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		slog.Warn("unexpected error opening settings, creating a new one", "path", s.path, "error", err)
	}

	s.data = settings{ID: uuid.NewString()}
	s.write()
}

func (s *Store) write() {
	dir := filepath.Dir(s.path)
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			slog.Error("failed to create settings dir", "path", dir, "error", err)
			return
		}
	}

	payload, err := json.Marshal(s.data)
	if err != nil {
		slog.Error("failed to marshal settings", "error", err)
		return
	}
	fp, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		slog.Error("failed to write settings", "path", s.path, "error", err)
		return
	}
	defer fp.Close()
	if n, err := fp.Write(payload); err != nil || n != len(payload) {
		slog.Error("failed to write settings payload", "path", s.path, "bytes_written", n, "payload_length", len(payload), "error", err)
		return
	}

	slog.Debug("wrote settings", "path", s.path)
}
