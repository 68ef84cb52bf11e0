package backend

import (
	"context"
	"sync"
	"time"
)

// reloadGate keeps successive fixture reloads at least spacing apart.
type reloadGate struct {
	spacing time.Duration

	mu   sync.Mutex
	next time.Time
}

func newReloadGate(spacing time.Duration) *reloadGate {
	return &reloadGate{spacing: max(spacing, 0)}
}

// wait blocks until the next reload may start. It returns false when ctx
// ends first.
func (g *reloadGate) wait(ctx context.Context) bool {
	if g == nil || g.spacing <= 0 {
		return ctx.Err() == nil
	}
	for {
		g.mu.Lock()
		wait := time.Until(g.next)
		if wait <= 0 {
			g.next = time.Now().Add(g.spacing)
			g.mu.Unlock()
			return true
		}
		g.mu.Unlock()
		timer := time.NewTimer(min(wait, g.spacing))
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}
	}
}
