package backend

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/atomicstack/sectionlist/internal/fixture"
	"github.com/atomicstack/sectionlist/internal/logging/events"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindReload Kind = iota
)

// Event conveys a reloaded data set or an error from a backend poll.
type Event struct {
	Kind Kind
	Path string
	Data fixture.DataSet
	Err  error
}

type fileStamp struct {
	size    int64
	modTime time.Time
}

// Watcher polls a fixture file at a fixed interval and publishes a reload
// event whenever its size or modification time changes.
type Watcher struct {
	path     string
	interval time.Duration
	opts     fixture.Options

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher for path. It returns nil when path is empty
// or interval is not positive, since there is nothing to poll.
func NewWatcher(path string, interval time.Duration, opts fixture.Options) *Watcher {
	if path == "" || interval <= 0 {
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		interval: interval,
		opts:     opts,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}

	w.startFixturePoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current check; use
// Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	if w == nil {
		return
	}
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	if w == nil {
		return
	}
	w.wg.Wait()
}

func (w *Watcher) startFixturePoller() {
	gate := newReloadGate(w.interval / 2)
	last, _ := stat(w.path)
	w.wg.Add(1)
	go w.poll(func(ctx context.Context) (Event, bool) {
		stamp, err := stat(w.path)
		if err != nil {
			if last == (fileStamp{}) {
				return Event{}, false
			}
			last = fileStamp{}
			return Event{Kind: KindReload, Path: w.path, Err: err}, true
		}
		if stamp == last {
			return Event{}, false
		}
		if !gate.wait(ctx) {
			return Event{}, false
		}
		// still being written; the next tick sees the final stamp
		if again, err := stat(w.path); err == nil && again != stamp {
			return Event{}, false
		}
		last = stamp
		ds, err := fixture.Load(w.path, w.opts)
		events.Fixture.Reload(w.path)
		return Event{Kind: KindReload, Path: w.path, Data: ds, Err: err}, true
	})
}

func stat(path string) (fileStamp, error) {
	info, err := os.Stat(path)
	if err != nil {
		return fileStamp{}, err
	}
	if info.IsDir() {
		return fileStamp{}, errors.New("backend: fixture path is a directory")
	}
	return fileStamp{size: info.Size(), modTime: info.ModTime()}, nil
}

func (w *Watcher) poll(check func(context.Context) (Event, bool)) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			evt, changed := check(w.ctx)
			if !changed {
				continue
			}
			select {
			case <-w.ctx.Done():
				return
			case w.events <- evt:
			}
		}
	}
}
