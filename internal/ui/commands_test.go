package ui

import (
	"errors"
	"testing"

	"github.com/atomicstack/sectionlist/internal/state"
	"github.com/atomicstack/sectionlist/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

func TestActionResultShowsInfoAndErrors(t *testing.T) {
	h := NewHarness(NewModel(Options{Data: buildData(t, threeSections), Width: 60, Height: 5}))
	h.Send(command.ActionResult{Info: `Copied "a1"`})
	if status := statusOf(h); status != `Copied "a1"` {
		t.Fatalf("expected copy info, got %q", status)
	}
	h.Send(command.ActionResult{Err: errors.New("no clipboard")})
	if status := statusOf(h); status != "Error: no clipboard" {
		t.Fatalf("expected copy error, got %q", status)
	}
	if h.Model().currentInfo() != "" {
		t.Fatalf("expected info cleared by the error")
	}
}

func TestActionContextFollowsView(t *testing.T) {
	h := newTestModel(t, threeSections, nil)
	ctx := h.Model().actionContext()
	if ctx.Position != 1 || ctx.Text != "a1" || ctx.Section != "A" {
		t.Fatalf("expected a1 in A, got %+v", ctx)
	}

	h.Send(runes("]"))
	ctx = h.Model().actionContext()
	if ctx.Position != 7 || ctx.Text != "b1" || ctx.Section != "B" {
		t.Fatalf("expected b1 in B, got %+v", ctx)
	}

	h.Model().marked = 9
	if ctx = h.Model().actionContext(); ctx.Text != "b3" {
		t.Fatalf("expected marked item, got %+v", ctx)
	}
}

func TestActionContextWithoutItems(t *testing.T) {
	h := newTestModel(t, "sections:\n  - title: Nothing\n    items: []\n    header: {hidden: true}\n", nil)
	if ctx := h.Model().actionContext(); ctx.Position != -1 || ctx.Text != "" {
		t.Fatalf("expected empty context, got %+v", ctx)
	}
}

func TestQuitSavesAndRestoresState(t *testing.T) {
	store := state.NewMemoryStore()
	h := newTestModel(t, threeSections, store)
	h.Send(runes("/"))
	h.Send(runes("b"))
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	h.Send(runes("j"))
	h.Send(runes("j"))
	expectList(t, h, " B", " b3", " b4", " b5")

	h.Send(runes("q"))
	if !h.Quit() {
		t.Fatalf("expected q to quit")
	}
	rec, ok := store.Get("test")
	if !ok {
		t.Fatalf("expected state saved on quit")
	}
	if rec.Filter != "b" || rec.SavedAt.IsZero() {
		t.Fatalf("unexpected record %+v", rec)
	}

	restored := newTestModel(t, threeSections, store)
	expectList(t, restored, " B", " b3", " b4", " b5")
	if q := restored.Model().dispatcher.Query(); q != "b" {
		t.Fatalf("expected restored filter, got %q", q)
	}
}

func TestRestoreIgnoresAnchorPastEnd(t *testing.T) {
	store := state.NewMemoryStore()
	if err := store.Put("test", state.Record{}); err != nil {
		t.Fatalf("put: %v", err)
	}
	rec, _ := store.Get("test")
	rec.Anchor.AnchorPosition = 40
	if err := store.Put("test", rec); err != nil {
		t.Fatalf("put: %v", err)
	}
	h := newTestModel(t, threeSections, store)
	expectList(t, h, " A", " a1", " a2", " a3")
}
