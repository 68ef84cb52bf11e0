package layout

// LinearStrategy stacks the items of a section one per row.
type LinearStrategy struct {
	sectionQueries
}

// NewLinearStrategy returns the one-column strategy.
func NewLinearStrategy() *LinearStrategy { return &LinearStrategy{} }

func (l *LinearStrategy) Fill(state *LayoutState, section *SectionData) FillResult {
	switch section.Direction {
	case DirectionStart:
		return l.fillStart(state, section)
	case DirectionEnd:
		return l.fillEnd(state, section)
	default:
		return l.fillAnchor(state, section)
	}
}

func (l *LinearStrategy) fillEnd(state *LayoutState, section *SectionData) FillResult {
	first := section.FirstContentPosition()
	marker := section.MarkerLine + section.HeaderSpace()
	fr := FillResult{
		MarkerStart:     marker,
		PositionStart:   first,
		FirstChildIndex: state.Engine.ChildCount(),
	}
	end, next, added := l.appendItems(state, section, first, marker, state.Engine.viewport.Height)
	fr.MarkerEnd, fr.PositionEnd, fr.AddedChildCount = end, next-1, added
	return fr
}

func (l *LinearStrategy) fillStart(state *LayoutState, section *SectionData) FillResult {
	fr := FillResult{MarkerEnd: section.MarkerLine, PositionEnd: section.AnchorPosition}
	start, prev, added := l.prependItems(state, section, section.AnchorPosition, section.MarkerLine, 0, 0)
	fr.MarkerStart, fr.PositionStart, fr.AddedChildCount = start, prev+1, added
	return fr
}

// fillAnchor lays out the anchor at the marker line, even past the viewport
// end, then fills down and up from it.
func (l *LinearStrategy) fillAnchor(state *LayoutState, section *SectionData) FillResult {
	fr := FillResult{FirstChildIndex: state.Engine.ChildCount()}
	anchor, top := section.AnchorPosition, section.MarkerLine
	if first := section.FirstContentPosition(); anchor < first {
		anchor, top = first, top+section.HeaderSpace()
	}
	end, next, down := l.appendItems(state, section, anchor, top, max(state.Engine.viewport.Height, top+1))
	start, prev, up := l.prependItems(state, section, anchor-1, top, 0, fr.FirstChildIndex)
	fr.MarkerStart, fr.MarkerEnd = start, end
	fr.PositionStart, fr.PositionEnd = prev+1, next-1
	fr.AddedChildCount = down + up
	return fr
}

func (l *LinearStrategy) FillToEnd(state *LayoutState, section *SectionData, leadingEdge, markerLine, anchorPosition int) int {
	end, _, _ := l.appendItems(state, section, anchorPosition, markerLine, leadingEdge)
	return end
}

func (l *LinearStrategy) FillToStart(state *LayoutState, section *SectionData, leadingEdge, markerLine, anchorPosition int) int {
	start, _, _ := l.prependItems(state, section, anchorPosition, markerLine, leadingEdge, 0)
	return start
}

func (l *LinearStrategy) AnchorPosition(state *LayoutState, section *SectionData, position int) int {
	return max(position, section.FirstContentPosition())
}

// appendItems lays out items from position downward starting at markerLine
// and attaches them at the end. It returns the new marker, the next position
// and the number attached.
func (l *LinearStrategy) appendItems(state *LayoutState, section *SectionData, position, markerLine, leadingEdge int) (int, int, int) {
	added := 0
	for position < state.ItemCount && markerLine < leadingEdge {
		ref := state.GetView(position)
		if ref.Attached || !section.Contains(ref.Element) {
			break
		}
		r := l.place(state, section, ref.Element, markerLine, false)
		state.AddView(ref.Element, -1)
		markerLine = r.Bottom
		position++
		added++
	}
	return markerLine, position, added
}

// prependItems lays out items from position upward ending at markerLine and
// inserts them at index. It returns the new marker, the position before the
// last one placed and the number attached.
func (l *LinearStrategy) prependItems(state *LayoutState, section *SectionData, position, markerLine, leadingEdge, index int) (int, int, int) {
	first := section.FirstContentPosition()
	added := 0
	for position >= first && markerLine > leadingEdge {
		ref := state.GetView(position)
		if ref.Attached || !section.Contains(ref.Element) {
			break
		}
		r := l.place(state, section, ref.Element, markerLine, true)
		state.AddView(ref.Element, index)
		markerLine = r.Top
		position--
		added++
	}
	return markerLine, position, added
}

// place measures el when needed and lays it out against markerLine, which is
// its top or, with up set, its bottom.
func (l *LinearStrategy) place(state *LayoutState, section *SectionData, el *Element, markerLine int, up bool) Rect {
	if !el.IsMeasured() {
		state.Measure(el, section.MarginStart+section.MarginEnd, 0)
	}
	left, right := section.ContentBounds(state)
	w, h := el.Measured()
	w = min(w, right-left)
	r := Rect{Left: left, Right: left + w, Top: markerLine, Bottom: markerLine + h}
	if !state.IsLTR {
		r.Left, r.Right = right-w, right
	}
	if up {
		r.Top, r.Bottom = markerLine-h, markerLine
	}
	state.LayoutElement(el, r)
	return r
}
