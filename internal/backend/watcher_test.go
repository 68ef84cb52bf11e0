package backend

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/atomicstack/sectionlist/internal/fixture"
)

func fixtureOptions() fixture.Options { return fixture.Options{} }

const original = "sections:\n  - title: One\n    items: [a, b]\n"

func writeFixture(t *testing.T, path, body string, mod time.Time) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if err := os.Chtimes(path, mod, mod); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
}

func nextEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case evt, ok := <-w.Events():
		if !ok {
			t.Fatalf("events channel closed")
		}
		return evt
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for event")
	}
	return Event{}
}

func TestWatcherDisabled(t *testing.T) {
	if w := NewWatcher("", time.Second, fixtureOptions()); w != nil {
		t.Fatalf("expected nil watcher without a path")
	}
	if w := NewWatcher("x.yaml", 0, fixtureOptions()); w != nil {
		t.Fatalf("expected nil watcher without an interval")
	}
	var w *Watcher
	w.Stop()
	w.Wait()
}

func TestWatcherReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	base := time.Now().Add(-time.Hour)
	writeFixture(t, path, original, base)

	w := NewWatcher(path, 10*time.Millisecond, fixtureOptions())
	defer func() {
		w.Stop()
		w.Wait()
	}()

	writeFixture(t, path, original+"  - title: Two\n    items: [c]\n", base.Add(time.Minute))
	evt := nextEvent(t, w)
	if evt.Err != nil {
		t.Fatalf("unexpected error: %v", evt.Err)
	}
	if evt.Kind != KindReload || evt.Path != path {
		t.Fatalf("unexpected event %+v", evt)
	}
	if got := evt.Data.Len(); got != 5 {
		t.Fatalf("expected 5 rows after reload, got %d", got)
	}
}

func TestWatcherReportsBrokenFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	base := time.Now().Add(-time.Hour)
	writeFixture(t, path, original, base)

	w := NewWatcher(path, 10*time.Millisecond, fixtureOptions())
	defer func() {
		w.Stop()
		w.Wait()
	}()

	writeFixture(t, path, "sections: [:", base.Add(time.Minute))
	if evt := nextEvent(t, w); evt.Err == nil {
		t.Fatalf("expected parse error")
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if evt := nextEvent(t, w); evt.Err == nil {
		t.Fatalf("expected error for removed fixture")
	}
}

func TestWatcherStopClosesEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	writeFixture(t, path, original, time.Now())
	w := NewWatcher(path, 10*time.Millisecond, fixtureOptions())
	w.Stop()
	w.Wait()
	if _, ok := <-w.Events(); ok {
		t.Fatalf("expected closed channel")
	}
}
