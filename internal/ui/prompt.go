package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// prompt is the one-line text entry used for filtering and jumping.
type prompt struct {
	input   textinput.Model
	initial string
}

func newPrompt(label, placeholder, initial string) *prompt {
	ti := textinput.New()
	ti.Prompt = label
	ti.Placeholder = placeholder
	ti.CharLimit = 128
	if styles.Prompt != nil {
		ti.PromptStyle = *styles.Prompt
	}
	if styles.Placeholder != nil {
		ti.PlaceholderStyle = *styles.Placeholder
	}
	if styles.Cursor != nil {
		ti.Cursor.Style = *styles.Cursor
	}
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()
	if initial != "" {
		ti.SetValue(initial)
	}
	return &prompt{input: ti, initial: initial}
}

func (p *prompt) Value() string { return strings.TrimSpace(p.input.Value()) }

func (p *prompt) View() string { return p.input.View() }

// Update feeds msg to the input. done is set on enter and cancel on escape.
func (p *prompt) Update(msg tea.Msg) (cmd tea.Cmd, done, cancel bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			return nil, false, true
		case tea.KeyEnter:
			return nil, true, false
		case tea.KeyCtrlU:
			p.input.SetValue("")
			p.input.CursorStart()
			return nil, false, false
		}
	}
	updated, cmd := p.input.Update(msg)
	p.input = updated
	return cmd, false, false
}

func (m *Model) openFilterPrompt() {
	m.prompt = newPrompt("/", "filter items", m.dispatcher.Query())
	m.mode = ModeFilter
	m.errMsg = ""
}

func (m *Model) openJumpPrompt() {
	m.prompt = newPrompt(":", "position or text", "")
	m.mode = ModeJump
	m.errMsg = ""
}

func (m *Model) closePrompt() {
	m.prompt = nil
	m.mode = ModeList
}

func (m *Model) handleActivePrompt(msg tea.Msg) (bool, tea.Cmd) {
	if m.prompt == nil || m.mode == ModeList {
		return false, nil
	}
	if _, ok := msg.(tea.KeyMsg); !ok {
		if m.handlerFor(msg) != nil {
			return false, nil
		}
		// cursor blinks and other input internals
		cmd, _, _ := m.prompt.Update(msg)
		return true, cmd
	}
	before := m.prompt.Value()
	cmd, done, cancel := m.prompt.Update(msg)
	switch m.mode {
	case ModeFilter:
		if cancel {
			m.applyFilter(m.prompt.initial)
			m.closePrompt()
			return true, nil
		}
		if done {
			m.closePrompt()
			return true, nil
		}
		if value := m.prompt.Value(); value != before {
			m.applyFilter(value)
		}
	case ModeJump:
		if cancel {
			m.closePrompt()
			return true, nil
		}
		if done {
			value := m.prompt.Value()
			m.closePrompt()
			return true, m.jumpTo(value)
		}
	}
	return true, cmd
}

// parsePosition reads a jump target as a row number.
func parsePosition(value string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, false
	}
	return n, true
}
