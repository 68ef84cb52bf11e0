package layout

// measureHeader measures a header. A header beside the body with an explicit
// margin is limited to that margin.
func (e *Engine) measureHeader(state *LayoutState, header *Element) {
	p := header.Params
	vp := e.viewport
	available := vp.Width - vp.PaddingStart - vp.PaddingEnd
	widthUsed := 0
	if !p.IsHeaderOverlay() {
		if p.IsHeaderStartAligned() && !p.HeaderStartMarginAuto {
			widthUsed = available - p.HeaderMarginStart
		} else if p.IsHeaderEndAligned() && !p.HeaderEndMarginAuto {
			widthUsed = available - p.HeaderMarginEnd
		}
	}
	state.Measure(header, max(widthUsed, 0), 0)
}

// headerSides returns the horizontal placement of a header of width.
func (e *Engine) headerSides(state *LayoutState, section *SectionData, width int) Rect {
	vp := e.viewport
	p := section.HeaderParams
	var r Rect
	switch {
	case p.IsHeaderEndAligned():
		if !p.IsHeaderOverlay() && !p.HeaderEndMarginAuto && section.MarginEnd > 0 {
			if state.IsLTR {
				r.Left = vp.Width - section.MarginEnd - vp.PaddingEnd
				r.Right = r.Left + width
			} else {
				r.Right = section.MarginEnd + vp.PaddingEnd
				r.Left = r.Right - width
			}
		} else if state.IsLTR {
			r.Right = vp.Width - vp.PaddingEnd
			r.Left = r.Right - width
		} else {
			r.Left = vp.PaddingEnd
			r.Right = r.Left + width
		}
	case p.IsHeaderStartAligned():
		if !p.IsHeaderOverlay() && !p.HeaderStartMarginAuto && section.MarginStart > 0 {
			if state.IsLTR {
				r.Right = section.MarginStart + vp.PaddingStart
				r.Left = r.Right - width
			} else {
				r.Left = vp.Width - section.MarginStart - vp.PaddingStart
				r.Right = r.Left + width
			}
		} else if state.IsLTR {
			r.Left = vp.PaddingStart
			r.Right = r.Left + width
		} else {
			r.Right = vp.Width - vp.PaddingStart
			r.Left = r.Right - width
		}
	default:
		r.Left = vp.paddingLeft()
		r.Right = r.Left + width
	}
	return r
}

// stick clamps a sticky header to the top edge and keeps its bottom above
// the end of its section. It reports whether the natural top was moved.
func (e *Engine) stick(params Params, top, height, sectionEnd int) (int, bool) {
	if !params.IsHeaderSticky() || e.stickyDisabled {
		return top, false
	}
	stuck := false
	if top < 0 {
		top, stuck = 0, true
	}
	if top+height > sectionEnd {
		top = sectionEnd - height
		stuck = true
	}
	return top, stuck
}

// layoutAndAddHeader places the header of a section filled by a strategy
// during Relayout and attaches it when it is visible.
func (e *Engine) layoutAndAddHeader(state *LayoutState, section *SectionData, fr FillResult) FillResult {
	if !section.HasHeader {
		return fr
	}
	header := section.Header.Element
	params := section.HeaderParams
	height := section.HeaderHeight
	reachedStart := fr.PositionStart <= section.FirstContentPosition()

	switch {
	case params.consumesSpace():
		fr.MarkerStart -= height
	case fr.AddedChildCount == 0 && section.Direction == DirectionStart:
		fr.MarkerStart -= height
	case fr.AddedChildCount == 0:
		fr.MarkerEnd = fr.MarkerStart + height
	}

	r := e.headerSides(state, section, section.HeaderWidth)
	top := fr.MarkerStart
	if !reachedStart {
		top = min(fr.MarkerStart, 0) - height
	} else if params.HeaderDisplay != HeaderInline && fr.HeaderOffset < 0 {
		top += fr.HeaderOffset
	}
	top, stuck := e.stick(params, top, height, fr.MarkerEnd)
	r.Top, r.Bottom = top, top+height

	if r.Bottom <= 0 || r.Top >= e.viewport.Height {
		return fr
	}

	index := fr.FirstChildIndex
	if stuck || params.IsHeaderOverlay() {
		index = fr.FirstChildIndex + fr.AddedChildCount
	}
	state.LayoutElement(header, r)
	state.AddView(header, index)
	if reachedStart {
		fr.PositionStart = section.FirstPosition
	}
	fr.AddedChildCount++
	return fr
}

// layoutHeaderTowardsEnd places the header of a section entered while
// scrolling toward the end and returns the marker below it.
func (e *Engine) layoutHeaderTowardsEnd(state *LayoutState, section *SectionData, markerLine int) int {
	r := e.headerSides(state, section, section.HeaderWidth)
	r.Top, r.Bottom = markerLine, markerLine+section.HeaderHeight
	state.LayoutElement(section.Header.Element, r)
	if section.HeaderParams.consumesSpace() {
		return r.Bottom
	}
	return markerLine
}

// updateHeaderForEnd moves the header of section sfp to the end of the
// children so it draws over its content.
func (e *Engine) updateHeaderForEnd(sfp int) {
	for i := len(e.children) - 1; i >= 0; i-- {
		child := e.children[i]
		if child.sectionFirstPosition() != sfp {
			return
		}
		if child.Params.IsHeader {
			e.removeChild(child)
			e.children = append(e.children, child)
			return
		}
	}
}

// updateHeaderForStart places the header of a section filled toward the
// start. Once the section's first item is attached the header sits at its
// natural place; before that only a sticky header is attached, above the
// viewport, for the sticky pass to pull down. empty marks a section without
// items.
func (e *Engine) updateHeaderForStart(state *LayoutState, section *SectionData, markerLine int, empty bool) int {
	if !section.HasHeader {
		return markerLine
	}
	params := section.HeaderParams
	height := section.HeaderHeight

	reached, contentTop := empty, markerLine
	if !empty {
		if first := e.childForPosition(section.FirstContentPosition()); first != nil && section.Contains(first) {
			reached, contentTop = true, first.rect.Top
		}
	}
	sticky := params.IsHeaderSticky() && !e.stickyDisabled
	if !reached && !sticky {
		return markerLine
	}

	r := e.headerSides(state, section, section.HeaderWidth)
	if reached {
		r.Top = contentTop
		if params.consumesSpace() || empty {
			r.Top -= height
		}
	} else {
		r.Top = min(markerLine, 0) - height
	}
	r.Bottom = r.Top + height

	header := section.Header.Element
	state.LayoutElement(header, r)
	if !section.Header.Attached {
		state.AddView(header, e.sectionRunEnd(section.FirstPosition))
	}
	if reached {
		return min(markerLine, r.Top)
	}
	return markerLine
}

// sectionRunEnd returns the child index just past the last attached element
// of section sfp, or 0 when none is attached.
func (e *Engine) sectionRunEnd(sfp int) int {
	for i := len(e.children) - 1; i >= 0; i-- {
		if e.children[i].sectionFirstPosition() == sfp {
			return i + 1
		}
	}
	return 0
}

// updateStickyHeaders repositions every attached sticky header against the
// current content of its section. A header that had to move is drawn after
// the section content it now covers.
func (e *Engine) updateStickyHeaders() {
	if e.stickyDisabled {
		return
	}
	var headers []*Element
	for _, child := range e.children {
		if child.Params.IsHeader && child.Params.IsHeaderSticky() {
			headers = append(headers, child)
		}
	}
	for _, header := range headers {
		p := header.Params
		sfp := header.sectionFirstPosition()
		var first *Element
		found := false
		lowest, highest := 0, 0
		for _, child := range e.children {
			if child.Params.IsHeader || child.sectionFirstPosition() != sfp {
				continue
			}
			if !found {
				lowest, highest, found = child.rect.Bottom, child.rect.Top, true
			}
			lowest = max(lowest, child.rect.Bottom)
			highest = min(highest, child.rect.Top)
			if child.Position == sfp+1 {
				first = child
			}
		}
		if !found {
			continue
		}
		_, height := header.Measured()
		var top int
		if first != nil {
			top = first.rect.Top
			if p.consumesSpace() {
				top -= height
			}
		} else {
			top = min(highest, 0) - height
		}
		top, stuck := e.stick(p, top, height, lowest)
		header.rect.Top, header.rect.Bottom = top, top+height
		if stuck {
			if end := e.sectionRunEnd(sfp); e.indexOf(header) < end-1 {
				e.removeChild(header)
				e.insertChild(header, end-1)
			}
		}
	}
}
