package layout

// SectionData describes one section for a single fill. It is derived from
// element metadata each pass and never stored between passes.
type SectionData struct {
	FirstPosition int
	StrategyID    int

	HasHeader    bool
	Header       ViewRef
	HeaderWidth  int
	HeaderHeight int
	HeaderParams Params

	// MarginStart and MarginEnd are the content margins left for a header
	// that sits beside the section body.
	MarginStart int
	MarginEnd   int

	AnchorPosition int
	Direction      Direction
	// MarkerLine is where the fill begins: the top of the first element for
	// DirectionEnd and DirectionNone, the bottom of the last one for
	// DirectionStart.
	MarkerLine int
}

// newSectionData resolves the section containing position from element
// metadata, measuring its header if that has not happened yet.
func newSectionData(state *LayoutState, direction Direction, position, markerLine int) *SectionData {
	ref := state.GetView(position)
	sfp := ref.Params().FirstPosition()
	first := ref
	if sfp != position {
		first = state.GetView(sfp)
	}
	sd := &SectionData{
		FirstPosition:  sfp,
		StrategyID:     first.Params().StrategyID,
		AnchorPosition: position,
		Direction:      direction,
		MarkerLine:     markerLine,
	}
	if first.Params().IsHeader {
		sd.setHeader(state, first)
	}
	return sd
}

func (sd *SectionData) setHeader(state *LayoutState, header ViewRef) {
	if !header.Element.IsMeasured() {
		state.Engine.measureHeader(state, header.Element)
	}
	sd.HasHeader = true
	sd.Header = header
	sd.HeaderParams = header.Params()
	sd.HeaderWidth, sd.HeaderHeight = header.Element.Measured()
}

// loadMargins sizes the content margins. Auto margins come from the strategy
// when it implements MarginResolver, otherwise from the header width.
func (sd *SectionData) loadMargins(s Strategy) {
	sd.MarginStart, sd.MarginEnd = 0, 0
	if !sd.HasHeader || sd.HeaderParams.IsHeaderOverlay() {
		return
	}
	autoStart, autoEnd := sd.HeaderWidth, sd.HeaderWidth
	if r, ok := s.(MarginResolver); ok {
		autoStart, autoEnd = r.ResolveMargins(sd)
	}
	p := sd.HeaderParams
	if p.IsHeaderStartAligned() {
		if p.HeaderStartMarginAuto {
			sd.MarginStart = autoStart
		} else {
			sd.MarginStart = max(p.HeaderMarginStart, 0)
		}
	} else if p.IsHeaderEndAligned() {
		if p.HeaderEndMarginAuto {
			sd.MarginEnd = autoEnd
		} else {
			sd.MarginEnd = max(p.HeaderMarginEnd, 0)
		}
	}
}

// FirstContentPosition is the first position after the header.
func (sd *SectionData) FirstContentPosition() int {
	if sd.HasHeader {
		return sd.FirstPosition + 1
	}
	return sd.FirstPosition
}

// HeaderSpace is the vertical space an inline header takes from the body.
func (sd *SectionData) HeaderSpace() int {
	if sd.HasHeader && sd.HeaderParams.consumesSpace() {
		return sd.HeaderHeight
	}
	return 0
}

// Contains reports whether el belongs to the section.
func (sd *SectionData) Contains(el *Element) bool {
	sfp, ok := el.Params.LookupFirstPosition()
	return ok && sfp == sd.FirstPosition
}

// ContentBounds returns the horizontal extent available to section items.
func (sd *SectionData) ContentBounds(state *LayoutState) (left, right int) {
	vp := state.Engine.viewport
	left = vp.paddingLeft()
	right = vp.Width - vp.PaddingStart - vp.PaddingEnd + left
	if state.IsLTR {
		return left + sd.MarginStart, right - sd.MarginEnd
	}
	return left + sd.MarginEnd, right - sd.MarginStart
}
