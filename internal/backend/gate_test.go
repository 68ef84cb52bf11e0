package backend

import (
	"context"
	"testing"
	"time"
)

func TestReloadGateSpacesReloads(t *testing.T) {
	g := newReloadGate(20 * time.Millisecond)
	ctx := context.Background()
	start := time.Now()
	for i := 0; i < 3; i++ {
		if !g.wait(ctx) {
			t.Fatalf("expected wait %d to pass", i)
		}
	}
	if elapsed := time.Since(start); elapsed < 35*time.Millisecond {
		t.Fatalf("expected reloads spaced by the interval, took %s", elapsed)
	}
}

func TestReloadGateDisabled(t *testing.T) {
	var nilGate *reloadGate
	if !nilGate.wait(context.Background()) {
		t.Fatalf("expected nil gate to pass")
	}
	g := newReloadGate(0)
	start := time.Now()
	for i := 0; i < 100; i++ {
		g.wait(context.Background())
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Fatalf("expected no waiting, took %s", elapsed)
	}
}

func TestReloadGateCancelled(t *testing.T) {
	g := newReloadGate(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	if !g.wait(ctx) {
		t.Fatalf("expected first wait to pass")
	}
	cancel()
	if g.wait(ctx) {
		t.Fatalf("expected cancelled wait to fail")
	}
}
