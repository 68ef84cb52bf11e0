package layout

const anySection = -1

// FirstVisibleItemPosition returns the lowest item position at least partly
// in view, or NoPosition.
func (e *Engine) FirstVisibleItemPosition() int {
	return e.visibleQuery(true, false)
}

// FirstCompletelyVisibleItemPosition returns the lowest item position wholly
// in view, or NoPosition.
func (e *Engine) FirstCompletelyVisibleItemPosition() int {
	return e.visibleQuery(true, true)
}

// LastVisibleItemPosition returns the highest item position at least partly
// in view, or NoPosition.
func (e *Engine) LastVisibleItemPosition() int {
	return e.visibleQuery(false, false)
}

// LastCompletelyVisibleItemPosition returns the highest item position wholly
// in view, or NoPosition.
func (e *Engine) LastCompletelyVisibleItemPosition() int {
	return e.visibleQuery(false, true)
}

// visibleQuery asks the strategy of the outermost attached section and falls
// back to scanning every child when that section has nothing in view.
func (e *Engine) visibleQuery(first, completely bool) int {
	var edge *Element
	for _, child := range e.children {
		if child.Params.IsHeader {
			continue
		}
		if edge == nil || (first && child.Position < edge.Position) || (!first && child.Position > edge.Position) {
			edge = child
		}
	}
	if edge == nil {
		return NoPosition
	}
	sfp := edge.sectionFirstPosition()
	if s, err := e.registry.Lookup(edge.Params.StrategyID); err == nil {
		var pos int
		switch {
		case first && completely:
			pos = s.FirstCompletelyVisibleItemPosition(e, sfp)
		case first:
			pos = s.FirstVisibleItemPosition(e, sfp)
		case completely:
			pos = s.LastCompletelyVisibleItemPosition(e, sfp)
		default:
			pos = s.LastVisibleItemPosition(e, sfp)
		}
		if pos != NoPosition {
			return pos
		}
	}
	return e.scanVisible(anySection, first, completely)
}

// scanVisible finds the lowest or highest visible item position of section
// sfp, or of every section for anySection.
func (e *Engine) scanVisible(sfp int, first, completely bool) int {
	height := e.viewport.Height
	found := NoPosition
	for _, child := range e.children {
		if child.Params.IsHeader {
			continue
		}
		if sfp != anySection && child.sectionFirstPosition() != sfp {
			continue
		}
		r := child.rect
		if completely {
			if r.Top < 0 || r.Bottom > height {
				continue
			}
		} else if r.Bottom <= 0 || r.Top >= height {
			continue
		}
		if found == NoPosition || (first && child.Position < found) || (!first && child.Position > found) {
			found = child.Position
		}
	}
	return found
}

// sectionQueries implements the element queries shared by the built-in
// strategies.
type sectionQueries struct{}

func (sectionQueries) FirstVisibleItemPosition(e *Engine, sfp int) int {
	return e.scanVisible(sfp, true, false)
}

func (sectionQueries) FirstCompletelyVisibleItemPosition(e *Engine, sfp int) int {
	return e.scanVisible(sfp, true, true)
}

func (sectionQueries) LastVisibleItemPosition(e *Engine, sfp int) int {
	return e.scanVisible(sfp, false, false)
}

func (sectionQueries) LastCompletelyVisibleItemPosition(e *Engine, sfp int) int {
	return e.scanVisible(sfp, false, true)
}

func (sectionQueries) HighestEdge(e *Engine, sfp, bound int) int {
	edge, found := bound, false
	for _, child := range e.children {
		if child.Params.IsHeader || child.sectionFirstPosition() != sfp {
			continue
		}
		if !found || child.rect.Top < edge {
			edge, found = child.rect.Top, true
		}
	}
	return edge
}

func (sectionQueries) LowestEdge(e *Engine, sfp, bound int) int {
	edge, found := bound, false
	for _, child := range e.children {
		if child.Params.IsHeader || child.sectionFirstPosition() != sfp {
			continue
		}
		if !found || child.rect.Bottom > edge {
			edge, found = child.rect.Bottom, true
		}
	}
	return edge
}

// HowManyMissingAbove counts the positions skipped while walking up from
// firstPosition through every known offscreen position.
func (sectionQueries) HowManyMissingAbove(firstPosition int, offscreen map[int]bool) int {
	if len(offscreen) == 0 {
		return 0
	}
	highest := firstPosition
	for pos := range offscreen {
		highest = max(highest, pos)
	}
	skipped, found := 0, 0
	for pos := firstPosition; found < len(offscreen) && pos <= highest; pos++ {
		if offscreen[pos] {
			found++
		} else {
			skipped++
		}
	}
	return skipped
}

// HowManyMissingBelow mirrors HowManyMissingAbove walking down from
// lastPosition.
func (sectionQueries) HowManyMissingBelow(lastPosition int, offscreen map[int]bool) int {
	if len(offscreen) == 0 {
		return 0
	}
	lowest := lastPosition
	for pos := range offscreen {
		lowest = min(lowest, pos)
	}
	skipped, found := 0, 0
	for pos := lastPosition; found < len(offscreen) && pos >= lowest; pos-- {
		if offscreen[pos] {
			found++
		} else {
			skipped++
		}
	}
	return skipped
}
