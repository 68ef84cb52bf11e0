package ui

import (
	"fmt"
	"time"

	"github.com/atomicstack/sectionlist/internal/fixture"
	"github.com/atomicstack/sectionlist/internal/layout"
	"github.com/atomicstack/sectionlist/internal/logging"
	"github.com/atomicstack/sectionlist/internal/logging/events"
	"github.com/atomicstack/sectionlist/internal/screen"
	tea "github.com/charmbracelet/bubbletea"
)

// smoothTickInterval paces smooth scroll steps at roughly 60 per second.
const smoothTickInterval = 16 * time.Millisecond

type smoothTickMsg struct {
	s *layout.SmoothScroller
}

func smoothTick(s *layout.SmoothScroller) tea.Cmd {
	return tea.Tick(smoothTickInterval, func(time.Time) tea.Msg {
		return smoothTickMsg{s: s}
	})
}

func (m *Model) scrollBy(dy int) int {
	if dy == 0 {
		return 0
	}
	applied, err := m.engine.ScrollBy(dy)
	if err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
	}
	return applied
}

func (m *Model) scrollToTop() {
	if m.screen.ItemCount() == 0 {
		return
	}
	m.engine.ScrollToPosition(0)
}

// scrollToBottom pages toward the end until the content stops moving.
func (m *Model) scrollToBottom() {
	step := max(m.listHeight(), 1)
	for i := 0; i <= m.screen.ItemCount(); i++ {
		if m.scrollBy(step) == 0 {
			return
		}
	}
}

// jumpSection snaps the start of the next (dir > 0) or previous section to
// the top of the list.
func (m *Model) jumpSection(dir int) {
	data := m.screen.Data()
	if data.Len() == 0 {
		return
	}
	current := m.engine.FirstVisibleItemPosition()
	if current < 0 {
		current = 0
	}
	start := sectionStart(data.Rows, current)
	target := start
	if dir > 0 {
		target = -1
		for p := current + 1; p < data.Len(); p++ {
			if data.Rows[p].Section != data.Rows[current].Section {
				target = p
				break
			}
		}
		if target < 0 {
			return
		}
	} else if start > 0 {
		target = sectionStart(data.Rows, start-1)
	}
	m.marked = screen.NoMark
	m.engine.ScrollToPosition(target)
}

func sectionStart(rows []fixture.Row, position int) int {
	for position > 0 && rows[position-1].Section == rows[position].Section {
		position--
	}
	return position
}

func (m *Model) applyFilter(query string) {
	m.stopSmooth()
	m.marked = screen.NoMark
	m.errMsg = ""
	m.dispatcher.SetFilter(query)
}

// jumpTo resolves value as a row number or as text and scrolls smoothly to
// the row.
func (m *Model) jumpTo(value string) tea.Cmd {
	if value == "" {
		return nil
	}
	data := m.screen.Data()
	pos, ok := parsePosition(value)
	if !ok {
		pos = data.Find(value)
		if pos < 0 {
			m.errMsg = fmt.Sprintf("No item matches %q", value)
			return nil
		}
	}
	if pos < 0 || pos >= data.Len() {
		m.errMsg = fmt.Sprintf("Position %d is outside 0 - %d", pos, data.Len()-1)
		return nil
	}
	events.UI.Jump(pos, true)
	m.stopSmooth()
	s := m.engine.SmoothScrollToPosition(pos)
	if s == nil {
		return nil
	}
	m.smooth = s
	return smoothTick(s)
}

func (m *Model) handleSmoothTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(smoothTickMsg)
	if !ok || tick.s == nil || tick.s != m.smooth {
		return nil
	}
	_, done, err := tick.s.Step(m.smoothStep)
	if err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
	}
	if !done {
		return smoothTick(tick.s)
	}
	m.smooth = nil
	m.marked = screen.NoMark
	if row, ok := m.screen.Data().Row(tick.s.Target()); ok && !row.IsHeader() {
		m.marked = tick.s.Target()
		m.revealTarget(tick.s.Target())
	}
	return nil
}

// revealTarget pulls the content down when the stuck header of its section
// covers the item a jump landed on.
func (m *Model) revealTarget(position int) {
	m.relayout()
	var target, header *layout.Element
	for _, child := range m.engine.Children() {
		if child.Position == position {
			target = child
		}
	}
	if target == nil {
		return
	}
	sfp, ok := target.Params.LookupFirstPosition()
	if !ok || sfp == position {
		return
	}
	for _, child := range m.engine.Children() {
		if child.Params.IsHeader && child.Position == sfp {
			header = child
		}
	}
	if header == nil {
		return
	}
	hr, tr := header.Rect(), target.Rect()
	if hr.Bottom <= tr.Top || tr.Bottom <= hr.Top || hr.Right <= tr.Left || tr.Right <= hr.Left {
		return
	}
	m.scrollBy(tr.Top - hr.Bottom)
}

func (m *Model) stopSmooth() {
	if m.smooth == nil {
		return
	}
	m.smooth.Stop()
	m.smooth = nil
}
