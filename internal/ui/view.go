package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // already styled; only truncate
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	lines := make([]styledLine, 0, m.height)
	lines = append(lines, m.listLines()...)
	for len(lines) < m.listHeight() {
		lines = append(lines, styledLine{})
	}
	lines = append(lines, m.statusLine())
	lines = limitHeight(lines, m.height)
	return renderLines(lines, m.width)
}

func (m *Model) listLines() []styledLine {
	height := m.listHeight()
	if height == 0 {
		return nil
	}
	if m.screen.ItemCount() == 0 {
		msg := "(no entries)"
		if q := m.dispatcher.Query(); q != "" {
			msg = fmt.Sprintf("No matches for %q", q)
		}
		return []styledLine{{text: msg, style: styles.Info}}
	}
	rows := m.screen.Render(m.engine.Children(), styles, m.marked)
	out := make([]styledLine, 0, len(rows))
	for _, row := range rows {
		out = append(out, styledLine{text: row, raw: true})
	}
	return out
}

func (m *Model) statusLine() styledLine {
	switch {
	case m.prompt != nil && m.mode != ModeList:
		return styledLine{text: m.prompt.View(), raw: true}
	case m.errMsg != "":
		return styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	case m.backendErr != "":
		return styledLine{text: fmt.Sprintf("Reload failed: %s", m.backendErr), style: styles.Error}
	}
	if info := m.currentInfo(); info != "" {
		return styledLine{text: info, style: styles.Info}
	}
	return styledLine{text: m.positionSummary(), style: styles.Status}
}

// positionSummary reads like "Veg 4-7/9 Bot": the section at the top, the
// visible item range and how far down the list is scrolled.
func (m *Model) positionSummary() string {
	count := m.screen.ItemCount()
	if count == 0 {
		return "0/0"
	}
	first := m.engine.FirstVisibleItemPosition()
	last := m.engine.LastVisibleItemPosition()
	parts := make([]string, 0, 4)
	if title := m.screen.Data().SectionTitle(first); title != "" {
		parts = append(parts, title)
	}
	if first >= 0 {
		parts = append(parts, fmt.Sprintf("%d-%d/%d", first, last, count))
	} else {
		parts = append(parts, fmt.Sprintf("-/%d", count))
	}
	parts = append(parts, scrollLabel(m.engine.ScrollOffset(), m.engine.ScrollExtent(), m.engine.ScrollRange()))
	if q := m.dispatcher.Query(); q != "" {
		parts = append(parts, fmt.Sprintf("[/%s]", q))
	}
	return strings.Join(parts, " ")
}

func scrollLabel(offset, extent, total int) string {
	room := total - extent
	switch {
	case room <= 0:
		return "All"
	case offset <= 0:
		return "Top"
	case offset >= room:
		return "Bot"
	}
	return fmt.Sprintf("%d%%", offset*100/room)
}

// Marked returns the highlighted position or screen.NoMark.
func (m *Model) Marked() int { return m.marked }

func limitHeight(lines []styledLine, height int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	// the status line always survives
	status := lines[len(lines)-1]
	lines = append(lines[:height-1:height-1], status)
	return lines
}

func renderLines(lines []styledLine, width int) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := truncateText(line.text, width)
		if !line.raw && line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	return ansi.Truncate(text, width, "…")
}
