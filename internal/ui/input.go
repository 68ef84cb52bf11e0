package ui

import (
	"github.com/atomicstack/sectionlist/internal/logging/events"
	"github.com/atomicstack/sectionlist/internal/ui/command"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// wheelRows is the number of scroll steps moved per wheel notch.
const wheelRows = 3

func (m Mode) String() string {
	switch m {
	case ModeFilter:
		return "filter"
	case ModeJump:
		return "jump"
	default:
		return "list"
	}
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	events.UI.Key(keyMsg.String(), m.mode.String())
	m.stopSmooth()

	page := max(m.listHeight()-1, 1)
	half := max(m.listHeight()/2, 1)

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.saveState()
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Escape):
		if m.dispatcher.Query() != "" {
			m.applyFilter("")
			return nil
		}
		m.saveState()
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		m.scrollBy(-m.scrollStep)
	case key.Matches(keyMsg, m.keys.Down):
		m.scrollBy(m.scrollStep)
	case key.Matches(keyMsg, m.keys.PageUp):
		m.scrollBy(-page)
	case key.Matches(keyMsg, m.keys.PageDown):
		m.scrollBy(page)
	case key.Matches(keyMsg, m.keys.HalfUp):
		m.scrollBy(-half)
	case key.Matches(keyMsg, m.keys.HalfDown):
		m.scrollBy(half)
	case key.Matches(keyMsg, m.keys.Top):
		m.scrollToTop()
	case key.Matches(keyMsg, m.keys.Bottom):
		m.scrollToBottom()
	case key.Matches(keyMsg, m.keys.NextSection):
		m.jumpSection(1)
	case key.Matches(keyMsg, m.keys.PrevSection):
		m.jumpSection(-1)
	case key.Matches(keyMsg, m.keys.Filter):
		m.openFilterPrompt()
	case key.Matches(keyMsg, m.keys.Jump):
		m.openJumpPrompt()
	case key.Matches(keyMsg, m.keys.Copy):
		return m.bus.Execute(command.Request{
			ID:      "copy:item",
			Label:   "copy item",
			Handler: command.CopyItem,
			Context: m.actionContext(),
		})
	case key.Matches(keyMsg, m.keys.CopySection):
		return m.bus.Execute(command.Request{
			ID:      "copy:section",
			Label:   "copy section",
			Handler: command.CopySection,
			Context: m.actionContext(),
		})
	case key.Matches(keyMsg, m.keys.ToggleRTL):
		vp := m.screen.Viewport()
		vp.RTL = !vp.RTL
		m.setViewport(vp)
	}
	return nil
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok || mouse.Action != tea.MouseActionPress {
		return nil
	}
	var dy int
	switch mouse.Button {
	case tea.MouseButtonWheelUp:
		dy = -wheelRows * m.scrollStep
	case tea.MouseButtonWheelDown:
		dy = wheelRows * m.scrollStep
	default:
		return nil
	}
	m.stopSmooth()
	events.UI.Wheel(dy, m.scrollBy(dy))
	return nil
}

// actionContext describes the marked item, or the first item fully in view
// when nothing is marked.
func (m *Model) actionContext() command.Context {
	pos := m.marked
	data := m.screen.Data()
	if row, ok := data.Row(pos); !ok || row.IsHeader() {
		pos = m.engine.FirstCompletelyVisibleItemPosition()
		if pos < 0 {
			pos = m.engine.FirstVisibleItemPosition()
		}
	}
	row, ok := data.Row(pos)
	if !ok {
		return command.Context{Position: -1}
	}
	return command.Context{
		Position: pos,
		Text:     row.Text,
		Section:  data.SectionTitle(pos),
	}
}
