// Package screen is the terminal side of the layout engine: it binds fixture
// rows to pooled elements, measures them in terminal cells and paints the
// attached elements into a frame of text rows.
package screen

import (
	"strings"

	"github.com/atomicstack/sectionlist/internal/fixture"
	"github.com/atomicstack/sectionlist/internal/layout"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
)

const poolLimit = 64

// Cell is the content bound to an element.
type Cell struct {
	Text  string
	Lines []string
}

// Stats counts element pool traffic.
type Stats struct {
	Created  int
	Reused   int
	Recycled int
	Pooled   int
}

// Live returns the number of elements handed out and not yet recycled.
func (s Stats) Live() int { return s.Created + s.Reused - s.Recycled }

// Screen implements layout.Host over a fixture data set.
type Screen struct {
	data     fixture.DataSet
	viewport layout.Viewport
	pool     []*layout.Element
	stats    Stats
	pending  bool
}

// New returns a screen showing data in a viewport of the given geometry.
func New(data fixture.DataSet, vp layout.Viewport) *Screen {
	return &Screen{data: data, viewport: vp}
}

// Data returns the bound data set.
func (s *Screen) Data() fixture.DataSet { return s.data }

// SetData swaps the bound data set. Attached elements still point at the old
// rows; the caller tells the engine the data set changed.
func (s *Screen) SetData(data fixture.DataSet) {
	s.data = data
	s.RequestLayout()
}

// SetViewport changes the geometry used by the next pass. Attached elements
// keep their measurements until the engine is told they changed.
func (s *Screen) SetViewport(vp layout.Viewport) {
	if vp == s.viewport {
		return
	}
	s.viewport = vp
	s.RequestLayout()
}

// SetSize resizes the viewport keeping padding and direction.
func (s *Screen) SetSize(width, height int) {
	vp := s.viewport
	vp.Width, vp.Height = max(width, 0), max(height, 0)
	s.SetViewport(vp)
}

// Stats returns pool counters.
func (s *Screen) Stats() Stats {
	st := s.stats
	st.Pooled = len(s.pool)
	return st
}

// LayoutRequested reports and clears a pending layout request.
func (s *Screen) LayoutRequested() bool {
	pending := s.pending
	s.pending = false
	return pending
}

func (s *Screen) ItemCount() int { return s.data.Len() }

func (s *Screen) Viewport() layout.Viewport { return s.viewport }

func (s *Screen) RequestLayout() { s.pending = true }

func (s *Screen) Obtain(position int) *layout.Element {
	var el *layout.Element
	if n := len(s.pool); n > 0 {
		el = s.pool[n-1]
		s.pool = s.pool[:n-1]
		el.Reset(position)
		s.stats.Reused++
	} else {
		el = layout.NewElement(position)
		s.stats.Created++
	}
	s.bind(el)
	return el
}

func (s *Screen) Recycle(el *layout.Element) {
	s.stats.Recycled++
	if len(s.pool) >= poolLimit {
		return
	}
	el.Content = nil
	s.pool = append(s.pool, el)
}

// Rebind refreshes an attached element after its row changed.
func (s *Screen) Rebind(el *layout.Element) {
	s.bind(el)
}

func (s *Screen) bind(el *layout.Element) {
	row, ok := s.data.Row(el.Position)
	if !ok {
		el.Params = layout.NewParams()
		el.Content = &Cell{}
		return
	}
	el.Params = row.Params
	el.Content = &Cell{Text: row.Text}
}

// Measure wraps the element text to the width left after widthUsed.
// Headers beside the section body shrink to their label; inline headers span
// the row.
func (s *Screen) Measure(el *layout.Element, widthUsed, heightUsed int) (int, int) {
	vp := s.viewport
	available := max(vp.Width-vp.PaddingStart-vp.PaddingEnd-widthUsed, 1)
	cell, _ := el.Content.(*Cell)
	if cell == nil {
		cell = &Cell{}
		el.Content = cell
	}
	p := el.Params
	if p.IsHeader {
		label := " " + cell.Text + " "
		width := available
		if (p.IsHeaderStartAligned() || p.IsHeaderEndAligned() || p.IsHeaderOverlay()) && widthUsed == 0 {
			width = min(ansi.StringWidth(label), available)
		}
		cell.Lines = []string{ansi.Truncate(label, width, "…")}
		return width, 1
	}
	cell.Lines = wrap(cell.Text, available)
	return available, len(cell.Lines)
}

// wrap word-wraps text behind a one cell indent and clips words that are
// longer than the line.
func wrap(text string, width int) []string {
	wrapped := wordwrap.String(text, max(width-1, 1))
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(" "+strings.TrimRight(line, " "), width, "…")
	}
	return lines
}
