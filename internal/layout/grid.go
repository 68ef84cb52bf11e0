package layout

// GridStrategy lays out the items of a section in rows of Columns equal
// cells. A row is as tall as its tallest cell.
type GridStrategy struct {
	sectionQueries
	Columns int
}

// NewGridStrategy returns a grid of columns cells per row.
func NewGridStrategy(columns int) *GridStrategy {
	return &GridStrategy{Columns: max(columns, 1)}
}

func (g *GridStrategy) columns() int { return max(g.Columns, 1) }

// rowStart returns the first position of the row holding position.
func (g *GridStrategy) rowStart(section *SectionData, position int) int {
	first := section.FirstContentPosition()
	if position < first {
		return first
	}
	return first + (position-first)/g.columns()*g.columns()
}

func (g *GridStrategy) Fill(state *LayoutState, section *SectionData) FillResult {
	switch section.Direction {
	case DirectionStart:
		fr := FillResult{MarkerEnd: section.MarkerLine, PositionEnd: section.AnchorPosition}
		start, prev, added := g.prependRows(state, section, section.AnchorPosition, section.MarkerLine, 0, 0)
		fr.MarkerStart, fr.PositionStart, fr.AddedChildCount = start, prev+1, added
		return fr
	case DirectionEnd:
		first := section.FirstContentPosition()
		marker := section.MarkerLine + section.HeaderSpace()
		fr := FillResult{MarkerStart: marker, PositionStart: first, FirstChildIndex: state.Engine.ChildCount()}
		end, next, added := g.appendRows(state, section, first, marker, state.Engine.viewport.Height)
		fr.MarkerEnd, fr.PositionEnd, fr.AddedChildCount = end, next-1, added
		return fr
	}

	fr := FillResult{FirstChildIndex: state.Engine.ChildCount()}
	anchor, top := section.AnchorPosition, section.MarkerLine
	if first := section.FirstContentPosition(); anchor < first {
		anchor, top = first, top+section.HeaderSpace()
	}
	anchor = g.rowStart(section, anchor)
	end, next, down := g.appendRows(state, section, anchor, top, max(state.Engine.viewport.Height, top+1))
	start, prev, up := g.prependRows(state, section, anchor-1, top, 0, fr.FirstChildIndex)
	fr.MarkerStart, fr.MarkerEnd = start, end
	fr.PositionStart, fr.PositionEnd = prev+1, next-1
	fr.AddedChildCount = down + up
	return fr
}

func (g *GridStrategy) FillToEnd(state *LayoutState, section *SectionData, leadingEdge, markerLine, anchorPosition int) int {
	end, _, _ := g.appendRows(state, section, anchorPosition, markerLine, leadingEdge)
	return end
}

func (g *GridStrategy) FillToStart(state *LayoutState, section *SectionData, leadingEdge, markerLine, anchorPosition int) int {
	start, _, _ := g.prependRows(state, section, anchorPosition, markerLine, leadingEdge, 0)
	return start
}

func (g *GridStrategy) AnchorPosition(state *LayoutState, section *SectionData, position int) int {
	return g.rowStart(section, position)
}

func (g *GridStrategy) appendRows(state *LayoutState, section *SectionData, position, markerLine, leadingEdge int) (int, int, int) {
	added := 0
	for position < state.ItemCount && markerLine < leadingEdge {
		bottom, n := g.layoutRow(state, section, position, markerLine, false, -1)
		if n == 0 {
			break
		}
		markerLine = bottom
		position += n
		added += n
	}
	return markerLine, position, added
}

func (g *GridStrategy) prependRows(state *LayoutState, section *SectionData, position, markerLine, leadingEdge, index int) (int, int, int) {
	first := section.FirstContentPosition()
	added := 0
	for position >= first && markerLine > leadingEdge {
		start := g.rowStart(section, position)
		top, n := g.layoutRow(state, section, start, markerLine, true, index)
		if n == 0 {
			break
		}
		markerLine = top
		position = start - 1
		added += n
	}
	return markerLine, position, added
}

// layoutRow lays out the row beginning at start against markerLine, which is
// the row top or, with up set, the row bottom. Cells are attached in
// position order at index, or appended when index is negative. It returns
// the far edge of the row and the number of cells placed.
func (g *GridStrategy) layoutRow(state *LayoutState, section *SectionData, start, markerLine int, up bool, index int) (int, int) {
	cols := g.columns()
	cells := make([]*Element, 0, cols)
	for pos := start; pos < start+cols && pos < state.ItemCount; pos++ {
		ref := state.GetView(pos)
		if ref.Attached || !section.Contains(ref.Element) {
			break
		}
		cells = append(cells, ref.Element)
	}
	if len(cells) == 0 {
		return markerLine, 0
	}

	left, right := section.ContentBounds(state)
	cellWidth := (right - left) / cols
	rowHeight := 0
	for _, el := range cells {
		if !el.IsMeasured() {
			state.Measure(el, right-left-cellWidth+section.MarginStart+section.MarginEnd, 0)
		}
		_, h := el.Measured()
		rowHeight = max(rowHeight, h)
	}

	top := markerLine
	if up {
		top = markerLine - rowHeight
	}
	for i, el := range cells {
		cellLeft := left + i*cellWidth
		if !state.IsLTR {
			cellLeft = right - (i+1)*cellWidth
		}
		state.LayoutElement(el, Rect{Left: cellLeft, Top: top, Right: cellLeft + cellWidth, Bottom: top + rowHeight})
		if index < 0 {
			state.AddView(el, -1)
		} else {
			state.AddView(el, index+i)
		}
	}
	if up {
		return top, len(cells)
	}
	return top + rowHeight, len(cells)
}
