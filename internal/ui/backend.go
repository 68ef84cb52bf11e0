package ui

import (
	"fmt"

	"github.com/atomicstack/sectionlist/internal/backend"
	"github.com/atomicstack/sectionlist/internal/screen"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) {
	if evt.Err != nil {
		m.backendErr = evt.Err.Error()
		m.dispatcher.Handle(evt)
		return
	}
	m.stopSmooth()
	res := m.dispatcher.Handle(evt)
	if !res.Reloaded {
		return
	}
	m.backendErr = ""
	if row, ok := m.screen.Data().Row(m.marked); !ok || row.IsHeader() {
		m.marked = screen.NoMark
	}
	m.setInfo(fmt.Sprintf("Reloaded %d rows", res.Rows))
}
