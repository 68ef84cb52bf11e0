package ui

import tea "github.com/charmbracelet/bubbletea"

// maxHarnessSteps bounds the messages one Send may produce, so a command
// that keeps rescheduling itself fails loudly instead of hanging a test.
const maxHarnessSteps = 10000

// Harness drives the UI model programmatically for integration tests.
// Commands run synchronously, batches in order, and a quit stops the chain.
type Harness struct {
	model *Model
	quit  bool
	steps int
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	h.steps = 0
	h.deliver(msg)
}

// Type sends text as one key press of runes.
func (h *Harness) Type(text string) {
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

// Press sends a special key such as tea.KeyEnter.
func (h *Harness) Press(key tea.KeyType) {
	h.Send(tea.KeyMsg{Type: key})
}

func (h *Harness) deliver(msg tea.Msg) {
	switch m := msg.(type) {
	case nil:
		return
	case tea.QuitMsg:
		h.quit = true
		return
	case tea.BatchMsg:
		for _, cmd := range m {
			h.processCmd(cmd)
		}
		return
	}
	h.steps++
	if h.steps > maxHarnessSteps {
		panic("ui harness: command chain did not settle")
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	h.deliver(cmd())
}

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
