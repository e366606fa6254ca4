package lifecycle

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/exploitedtest/kb2midi/app/store"
)

type nopWindow struct{}

func (nopWindow) Show() error                 { return nil }
func (nopWindow) Focus() error                { return nil }
func (nopWindow) SetAlwaysOnTop(_ bool) error { return nil }
func (nopWindow) Emit(string, any) error      { return nil }

func TestWindowSlot(t *testing.T) {
	slot := &windowSlot{}

	if slot.get() != nil {
		t.Fatal("empty slot returned a window")
	}

	// An activation can race the slot assignment during startup.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		slot.set(nopWindow{})
	}()
	go func() {
		defer wg.Done()
		_ = slot.get()
	}()
	wg.Wait()

	if slot.get() == nil {
		t.Error("slot lost the window")
	}
}

func TestPathsShareAppDataDir(t *testing.T) {
	for name, path := range map[string]string{
		"log":      AppLogFile,
		"config":   ConfigFile,
		"settings": SettingsFile,
	} {
		if filepath.Dir(path) != AppDataDir {
			t.Errorf("%s file %q is outside the app data dir %q", name, path, AppDataDir)
		}
	}
}

func redirectLog(t *testing.T) {
	t.Helper()
	oldLogFile := AppLogFile
	AppLogFile = filepath.Join(t.TempDir(), "app.log")
	logOutput = nil
	t.Cleanup(func() {
		CloseLogging()
		AppLogFile = oldLogFile
		logOutput = nil
	})
}

func TestInitLoggingWritesToFile(t *testing.T) {
	redirectLog(t)

	logger := InitLogging(slog.LevelInfo)
	logger.Info("logging smoke test")

	if err := CloseLogging(); err != nil {
		t.Fatalf("CloseLogging() error = %v", err)
	}

	data, err := os.ReadFile(AppLogFile)
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	if !strings.Contains(string(data), "logging smoke test") {
		t.Errorf("log file missing the test record: %q", data)
	}
}

func TestInitLoggingHonorsLevel(t *testing.T) {
	redirectLog(t)

	logger := InitLogging(slog.LevelWarn)
	logger.Info("too quiet to record")
	logger.Warn("loud enough to record")
	CloseLogging()

	data, err := os.ReadFile(AppLogFile)
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	if strings.Contains(string(data), "too quiet to record") {
		t.Error("info record written despite warn level")
	}
	if !strings.Contains(string(data), "loud enough to record") {
		t.Error("warn record missing from log file")
	}
}

func TestNotifyFirstRunMarksSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	notifyFirstRun(store.New(path))

	if !store.New(path).GetFirstTimeRun() {
		t.Fatal("first run not recorded")
	}

	// Later launches see the marker and skip the notification.
	notifyFirstRun(store.New(path))

	if !store.New(path).GetFirstTimeRun() {
		t.Error("first-run marker lost after a later launch")
	}
}
