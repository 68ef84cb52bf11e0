package layout

import "github.com/atomicstack/sectionlist/internal/logging/events"

// ScrollBy scrolls the content by up to dy pixels, positive toward the end,
// and returns the distance actually scrolled. Content never moves past the
// first item at the top padding or the last item at the bottom padding.
func (e *Engine) ScrollBy(dy int) (int, error) {
	if e.inPass {
		return 0, ErrReentrantPass
	}
	if dy == 0 || len(e.children) == 0 {
		return 0, nil
	}
	state, err := e.beginPass()
	if err != nil {
		return 0, err
	}
	defer e.endPass(state)

	vp := e.viewport
	var delta int
	if dy > 0 {
		edge, err := e.fillToEnd(state, vp.Height+dy)
		if err != nil {
			return 0, err
		}
		delta = max(min(edge-vp.Height+vp.PaddingBottom, dy), 0)
	} else {
		edge, err := e.fillToStart(state, dy)
		if err != nil {
			return 0, err
		}
		delta = min(max(edge-vp.PaddingTop, dy), 0)
	}

	if delta != 0 {
		e.offsetChildren(-delta)
	}
	e.updateStickyHeaders()
	e.trim(state)
	events.Scroll.By(dy, delta, len(e.children))
	return delta, nil
}

// trim detaches and caches elements wholly outside the viewport, including
// headers placed above content that the scroll did not bring into view.
func (e *Engine) trim(state *LayoutState) {
	height := e.viewport.Height
	kept := e.children[:0]
	var trimmed []*Element
	for _, child := range e.children {
		if child.rect.Bottom <= 0 || child.rect.Top >= height {
			trimmed = append(trimmed, child)
			continue
		}
		kept = append(kept, child)
	}
	for i := len(kept); i < len(e.children); i++ {
		e.children[i] = nil
	}
	e.children = kept
	for _, child := range trimmed {
		state.CacheView(child.Position, child)
	}
}

// anchorAtEnd returns the last child, or the child before it when the last
// one is the header of the same section.
func (e *Engine) anchorAtEnd() *Element {
	n := len(e.children)
	last := e.children[n-1]
	if n > 1 && last.Params.IsHeader {
		if prev := e.children[n-2]; prev.sectionFirstPosition() == last.sectionFirstPosition() {
			return prev
		}
	}
	return last
}

// anchorAtStart returns the attached item with the lowest position, or the
// lowest header when no item is attached.
func (e *Engine) anchorAtStart() *Element {
	var item, header *Element
	for _, child := range e.children {
		if child.Params.IsHeader {
			if header == nil || child.Position < header.Position {
				header = child
			}
			continue
		}
		if item == nil || child.Position < item.Position {
			item = child
		}
	}
	if item != nil {
		return item
	}
	return header
}

// fillToEnd lays out content below the attached window until leadingEdge is
// covered and returns the bottom of the content.
func (e *Engine) fillToEnd(state *LayoutState, leadingEdge int) (int, error) {
	anchor := e.anchorAtEnd()
	sfp := anchor.sectionFirstPosition()
	bound := anchor.rect.Bottom

	section := newSectionData(state, DirectionEnd, sfp, bound)
	s, err := e.strategyFor(section)
	if err != nil {
		return 0, err
	}
	markerLine := s.LowestEdge(e, sfp, bound)
	markerLine = s.FillToEnd(state, section, leadingEdge, markerLine, anchor.Position+1)
	e.updateHeaderForEnd(sfp)
	return e.fillNextSectionsToEnd(state, leadingEdge, markerLine)
}

func (e *Engine) fillNextSectionsToEnd(state *LayoutState, leadingEdge, markerLine int) (int, error) {
	for markerLine < leadingEdge {
		anchorPosition := e.anchorAtEnd().Position + 1
		if anchorPosition >= state.ItemCount {
			break
		}
		before := len(e.children)

		section := newSectionData(state, DirectionEnd, anchorPosition, markerLine)
		s, err := e.strategyFor(section)
		if err != nil {
			return markerLine, err
		}
		contentPosition := anchorPosition
		if section.HasHeader {
			markerLine = e.layoutHeaderTowardsEnd(state, section, markerLine)
			contentPosition++
		}
		if contentPosition < state.ItemCount {
			markerLine = s.FillToEnd(state, section, leadingEdge, markerLine, contentPosition)
		}
		if section.HasHeader {
			header := section.Header.Element
			// a section without items still takes up its header's rows
			if len(e.children) == before {
				markerLine = max(markerLine, header.rect.Bottom)
			}
			state.AddView(header, -1)
		}
		events.Scroll.Section(DirectionEnd.String(), section.FirstPosition, markerLine)
		if len(e.children) == before {
			break
		}
	}
	return markerLine, nil
}

// fillToStart lays out content above the attached window until leadingEdge
// is covered and returns the top of the content.
func (e *Engine) fillToStart(state *LayoutState, leadingEdge int) (int, error) {
	anchor := e.anchorAtStart()
	sfp := anchor.sectionFirstPosition()

	markerLine := anchor.rect.Top
	if !anchor.Params.IsHeader {
		section := newSectionData(state, DirectionStart, sfp, anchor.rect.Top)
		s, err := e.strategyFor(section)
		if err != nil {
			return 0, err
		}
		markerLine = s.HighestEdge(e, sfp, anchor.rect.Top)
		markerLine = s.FillToStart(state, section, leadingEdge, markerLine, anchor.Position-1)
		markerLine = e.updateHeaderForStart(state, section, markerLine, false)
	}
	return e.fillPreviousSectionsToStart(state, leadingEdge, markerLine, sfp)
}

func (e *Engine) fillPreviousSectionsToStart(state *LayoutState, leadingEdge, markerLine, topSection int) (int, error) {
	for markerLine > leadingEdge {
		anchorPosition := topSection - 1
		if anchorPosition < 0 {
			break
		}
		before := len(e.children)

		section := newSectionData(state, DirectionStart, anchorPosition, markerLine)
		s, err := e.strategyFor(section)
		if err != nil {
			return markerLine, err
		}
		empty := anchorPosition < section.FirstContentPosition()
		if !empty {
			markerLine = s.FillToStart(state, section, leadingEdge, markerLine, anchorPosition)
		}
		markerLine = e.updateHeaderForStart(state, section, markerLine, empty)
		events.Scroll.Section(DirectionStart.String(), section.FirstPosition, markerLine)
		topSection = section.FirstPosition
		if len(e.children) == before {
			break
		}
	}
	return markerLine, nil
}
