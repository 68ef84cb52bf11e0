package layout

// ScrollExtent estimates the size of the scroll thumb. With smooth scrolling
// disabled the units are whole children.
func (e *Engine) ScrollExtent() int {
	itemCount := e.host.ItemCount()
	if len(e.children) == 0 || itemCount == 0 {
		return 0
	}
	if !e.smoothScrollEnabled {
		return len(e.children)
	}
	content := float64(len(e.children)) - e.fractionOfContentAbove(true) - e.fractionOfContentBelow(true)
	return int(content / float64(itemCount) * float64(e.viewport.Height))
}

// ScrollOffset estimates how far the content is scrolled.
func (e *Engine) ScrollOffset() int {
	itemCount := e.host.ItemCount()
	if len(e.children) == 0 || itemCount == 0 {
		return 0
	}
	child := e.children[0]
	if !e.smoothScrollEnabled {
		return child.Position
	}
	above := float64(child.Position) + e.fractionOfContentAbove(false)
	return int(above / float64(itemCount) * float64(e.viewport.Height))
}

// ScrollRange is the total scroll range in the units of ScrollExtent.
func (e *Engine) ScrollRange() int {
	if !e.smoothScrollEnabled {
		return e.host.ItemCount()
	}
	return e.viewport.Height
}

func fractionOffscreenAbove(child *Element) float64 {
	r := child.rect
	switch {
	case r.Bottom < 0:
		return 1
	case r.Top >= 0 || r.Height() == 0:
		return 0
	default:
		return float64(-r.Top) / float64(r.Height())
	}
}

func fractionOffscreenBelow(child *Element, height int) float64 {
	r := child.rect
	switch {
	case r.Top >= height:
		return 1
	case r.Bottom <= height || r.Height() == 0:
		return 0
	default:
		return float64(r.Bottom-height) / float64(r.Height())
	}
}

// fractionOfContentAbove sums the offscreen share of the children in the
// first attached section. Unless ignorePosition is set, children ordered
// before the anchor child count against it.
func (e *Engine) fractionOfContentAbove(ignorePosition bool) float64 {
	child := e.children[0]
	fraction := fractionOffscreenAbove(child)
	if child.Params.IsHeader && child.Params.IsHeaderInline() {
		return fraction
	}

	anchorPosition := child.Position
	sfp := child.sectionFirstPosition()
	beforeAnchor := 0
	firstPosition := NoPosition
	offscreen := make(map[int]bool)
	for _, c := range e.children[1:] {
		if c.sectionFirstPosition() != sfp {
			break
		}
		if !ignorePosition && c.Position < anchorPosition {
			beforeAnchor++
		}
		switch {
		case c.rect.Bottom < 0:
			fraction++
		case c.rect.Top >= 0:
			continue
		default:
			fraction += fractionOffscreenAbove(c)
		}
		if !c.Params.IsHeader {
			if firstPosition == NoPosition {
				firstPosition = c.Position
			}
			offscreen[c.Position] = true
		}
	}
	return fraction - float64(beforeAnchor) - float64(e.missing(child.Params.StrategyID, firstPosition, offscreen, true))
}

// fractionOfContentBelow mirrors fractionOfContentAbove for the last
// attached section.
func (e *Engine) fractionOfContentBelow(ignorePosition bool) float64 {
	height := e.viewport.Height
	last := e.children[len(e.children)-1]
	fraction := fractionOffscreenBelow(last, height)

	anchorPosition := last.Position
	sfp := last.sectionFirstPosition()
	afterAnchor := 0
	lastPosition := NoPosition
	offscreen := make(map[int]bool)
	for i := len(e.children) - 2; i >= 0; i-- {
		c := e.children[i]
		if c.sectionFirstPosition() != sfp {
			break
		}
		if !ignorePosition && c.Position > anchorPosition {
			afterAnchor++
		}
		switch {
		case c.rect.Top >= height:
			fraction++
		case c.rect.Bottom <= height:
			continue
		default:
			fraction += fractionOffscreenBelow(c, height)
		}
		if !c.Params.IsHeader {
			if lastPosition == NoPosition {
				lastPosition = c.Position
			}
			offscreen[c.Position] = true
		}
	}
	return fraction - float64(afterAnchor) - float64(e.missing(last.Params.StrategyID, lastPosition, offscreen, false))
}

func (e *Engine) missing(strategyID, from int, offscreen map[int]bool, above bool) int {
	s, err := e.registry.Lookup(strategyID)
	if err != nil {
		return 0
	}
	if above {
		return s.HowManyMissingAbove(from, offscreen)
	}
	return s.HowManyMissingBelow(from, offscreen)
}
