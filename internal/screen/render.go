package screen

import (
	"strings"

	"github.com/atomicstack/sectionlist/internal/layout"
	"github.com/atomicstack/sectionlist/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// NoMark disables the marked row highlight.
const NoMark = -1

type cell struct {
	text  string
	style *lipgloss.Style
}

type canvas struct {
	width int
	rows  [][]cell
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, rows: make([][]cell, height)}
	for y := range c.rows {
		row := make([]cell, width)
		for x := range row {
			row[x].text = " "
		}
		c.rows[y] = row
	}
	return c
}

// paint fills r with style and writes lines from its top-left corner.
// Columns outside the canvas are dropped.
func (c *canvas) paint(r layout.Rect, lines []string, style *lipgloss.Style) {
	for y := max(r.Top, 0); y < min(r.Bottom, len(c.rows)); y++ {
		row := c.rows[y]
		for x := max(r.Left, 0); x < min(r.Right, c.width); x++ {
			row[x] = cell{text: " ", style: style}
		}
		i := y - r.Top
		if i >= len(lines) {
			continue
		}
		x := r.Left
		for _, ch := range lines[i] {
			w := ansi.StringWidth(string(ch))
			if w == 0 {
				continue
			}
			if x+w > r.Right || x+w > c.width {
				break
			}
			if x >= 0 {
				row[x] = cell{text: string(ch), style: style}
				for k := 1; k < w; k++ {
					row[x+k] = cell{style: style}
				}
			}
			x += w
		}
	}
}

func (c *canvas) lines(styled bool) []string {
	out := make([]string, len(c.rows))
	for y, row := range c.rows {
		var b strings.Builder
		var run strings.Builder
		var current *lipgloss.Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if styled && current != nil {
				b.WriteString(current.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.style != current {
				flush()
				current = cl.style
			}
			run.WriteString(cl.text)
		}
		flush()
		text := b.String()
		if !styled {
			text = strings.TrimRight(text, " ")
		}
		out[y] = text
	}
	return out
}

// Render paints children in attach order, so later children cover earlier
// ones. The element at marked is drawn with the marked style.
func (s *Screen) Render(children []*layout.Element, styles *theme.Styles, marked int) []string {
	return s.draw(children, styles, marked, true)
}

// RenderPlain is Render without styling and with trailing blanks removed.
func (s *Screen) RenderPlain(children []*layout.Element) []string {
	return s.draw(children, theme.Plain(), NoMark, false)
}

func (s *Screen) draw(children []*layout.Element, styles *theme.Styles, marked int, styled bool) []string {
	c := newCanvas(s.viewport.Width, s.viewport.Height)
	for _, el := range children {
		var lines []string
		if cl, ok := el.Content.(*Cell); ok {
			lines = cl.Lines
		}
		c.paint(el.Rect(), lines, styleFor(el, styles, marked))
	}
	return c.lines(styled)
}

func styleFor(el *layout.Element, styles *theme.Styles, marked int) *lipgloss.Style {
	p := el.Params
	switch {
	case el.Position == marked:
		return styles.Marked
	case p.IsHeader && p.IsHeaderOverlay():
		return styles.HeaderOverlay
	case p.IsHeader && (p.IsHeaderStartAligned() || p.IsHeaderEndAligned()):
		return styles.HeaderAside
	case p.IsHeader:
		return styles.Header
	case el.Position%2 == 1:
		return styles.ItemAlt
	default:
		return styles.Item
	}
}
