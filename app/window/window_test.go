package window

import (
	"errors"
	"sync"
	"testing"
)

type fakeWindow struct {
	mu      sync.Mutex
	events  []string
	emitErr error
}

func (f *fakeWindow) Show() error                 { return nil }
func (f *fakeWindow) Focus() error                { return nil }
func (f *fakeWindow) SetAlwaysOnTop(_ bool) error { return nil }

func (f *fakeWindow) Emit(event string, _ any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return f.emitErr
}

func (f *fakeWindow) emitted() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.events...)
}

func TestFocusTrackerEmitsOncePerTransition(t *testing.T) {
	fake := &fakeWindow{}
	tracker := NewFocusTracker(fake)

	tracker.FocusChanged(true)
	tracker.FocusChanged(true) // platform repeats itself
	tracker.FocusChanged(false)
	tracker.FocusChanged(false)
	tracker.FocusChanged(true)

	want := []string{EventAppFocus, EventAppBlur, EventAppFocus}
	got := fake.emitted()
	if len(got) != len(want) {
		t.Fatalf("emitted %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFocusTrackerStartsBlurred(t *testing.T) {
	fake := &fakeWindow{}
	tracker := NewFocusTracker(fake)

	tracker.FocusChanged(false)

	if got := fake.emitted(); len(got) != 0 {
		t.Errorf("blur before any focus emitted %v, want nothing", got)
	}
	if tracker.Focused() {
		t.Error("tracker reports focused without a focus report")
	}
}

func TestFocusTrackerToleratesEmitFailure(t *testing.T) {
	fake := &fakeWindow{emitErr: errors.New("content layer not listening")}
	tracker := NewFocusTracker(fake)

	tracker.FocusChanged(true)
	tracker.FocusChanged(false)

	// Both transitions must still be attempted and tracked.
	if got := fake.emitted(); len(got) != 2 {
		t.Errorf("emitted %v, want two attempts", got)
	}
	if tracker.Focused() {
		t.Error("tracker state diverged after emit failure")
	}
}

func TestFocusTrackerConcurrentReports(t *testing.T) {
	fake := &fakeWindow{}
	tracker := NewFocusTracker(fake)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		focused := i%2 == 0
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				tracker.FocusChanged(focused)
			}
		}()
	}
	wg.Wait()

	// Every emitted event corresponds to a real transition, so the
	// sequence must alternate.
	got := fake.emitted()
	for i := 1; i < len(got); i++ {
		if got[i] == got[i-1] {
			t.Fatalf("events %d and %d both %q, transitions must alternate", i-1, i, got[i])
		}
	}
	if len(got) > 0 && got[0] != EventAppFocus {
		t.Errorf("first event = %q, want %q", got[0], EventAppFocus)
	}
}
