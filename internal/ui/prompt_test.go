package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFilterAppliesWhileTyping(t *testing.T) {
	h := newTestModel(t, threeSections, nil)
	h.Send(runes("/"))
	if h.Model().Mode() != ModeFilter {
		t.Fatalf("expected filter mode, got %v", h.Model().Mode())
	}
	h.Send(runes("b"))
	expectList(t, h, " B", " b1", " b2", " b3")
	if status := statusOf(h); status != "/b" {
		t.Fatalf("expected prompt in the status line, got %q", status)
	}

	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if h.Model().Mode() != ModeList {
		t.Fatalf("expected list mode after enter, got %v", h.Model().Mode())
	}
	status := statusOf(h)
	if !strings.HasPrefix(status, "B 1-3/6") || !strings.HasSuffix(status, "[/b]") {
		t.Fatalf("expected filtered status, got %q", status)
	}

	// escape in the list clears the filter before quitting
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	expectList(t, h, " A", " a1", " a2", " a3")
	if q := h.Model().dispatcher.Query(); q != "" {
		t.Fatalf("expected filter cleared, got %q", q)
	}
	if h.Quit() {
		t.Fatalf("expected first escape to only clear the filter")
	}
	h.Press(tea.KeyEsc)
	if !h.Quit() {
		t.Fatalf("expected second escape to quit")
	}
}

func TestFilterEscapeRestoresPreviousQuery(t *testing.T) {
	h := newTestModel(t, threeSections, nil)
	h.Send(runes("/"))
	h.Send(runes("c"))
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})

	h.Send(runes("/"))
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlU})
	expectList(t, h, " A", " a1", " a2", " a3")
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	expectList(t, h, " C", " c1", " c2", " c3")
	if q := h.Model().dispatcher.Query(); q != "c" {
		t.Fatalf("expected previous filter restored, got %q", q)
	}
}

func TestFilterWithoutMatches(t *testing.T) {
	h := newTestModel(t, threeSections, nil)
	h.Send(runes("/"))
	h.Type("zz")
	lines := viewLines(h)
	if lines[0] != `No matches for "zz"` {
		t.Fatalf("expected no matches message, got %q", lines[0])
	}
}

func TestPromptKeysDoNotNavigate(t *testing.T) {
	h := newTestModel(t, threeSections, nil)
	h.Send(runes("/"))
	h.Send(runes("q"))
	if h.Model().Mode() != ModeFilter {
		t.Fatalf("expected q typed into the prompt")
	}
	if v := h.Model().prompt.Value(); v != "q" {
		t.Fatalf("expected prompt value q, got %q", v)
	}
}

func TestPromptPassesRegisteredMessages(t *testing.T) {
	h := NewHarness(NewModel(Options{Data: buildData(t, threeSections)}))
	h.Send(tea.WindowSizeMsg{Width: 20, Height: 5})
	h.Send(runes("/"))
	h.Send(tea.WindowSizeMsg{Width: 20, Height: 4})
	if vp := h.Model().Screen().Viewport(); vp.Height != 3 {
		t.Fatalf("expected resize handled while the prompt is open, got %+v", vp)
	}
	if h.Model().Mode() != ModeFilter {
		t.Fatalf("expected prompt still open")
	}
}
