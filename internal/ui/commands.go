package ui

import (
	"time"

	"github.com/atomicstack/sectionlist/internal/logging"
	"github.com/atomicstack/sectionlist/internal/logging/events"
	"github.com/atomicstack/sectionlist/internal/state"
	"github.com/atomicstack/sectionlist/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.ActionResult)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Action.Error(result.Err)
		return nil
	}
	m.errMsg = ""
	m.setInfo(result.Info)
	events.Action.Success(result.Info)
	return nil
}

// saveState records the anchor and filter so the next run over the same
// data set resumes where this one stopped.
func (m *Model) saveState() {
	if m.store == nil {
		return
	}
	rec := state.Record{
		Anchor:  m.engine.SaveState(),
		Filter:  m.dispatcher.Query(),
		SavedAt: time.Now(),
	}
	if err := m.store.Put(m.storeKey, rec); err != nil {
		logging.Error(err)
	}
}
