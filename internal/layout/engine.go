// Package layout positions section headers and section items in a scrolling
// list, reusing detached elements instead of recreating them.
//
// The Engine owns the list of attached elements. Every pass (Relayout or
// ScrollBy) runs to completion on the caller's goroutine: elements detached
// during the pass are parked in a LayoutState cache and either reattached or
// released to the Host when the pass ends. Section bodies are laid out by a
// Strategy looked up by the integer id carried in each element's Params;
// headers are placed by the engine and may stick to the top edge while their
// section is in view.
package layout

import (
	"errors"

	"github.com/atomicstack/sectionlist/internal/logging"
	"github.com/atomicstack/sectionlist/internal/logging/events"
)

const noPositionRequest = -1

// ErrReentrantPass is returned when a pass is started from inside another.
var ErrReentrantPass = errors.New("layout: pass already in progress")

// SavedState is the anchor captured across the host's lifecycle.
type SavedState struct {
	AnchorPosition int `yaml:"anchor_position" json:"anchor_position"`
	AnchorOffset   int `yaml:"anchor_offset" json:"anchor_offset"`
}

// Rebinder is implemented by hosts that refresh the content and metadata of
// an attached element after its data changed.
type Rebinder interface {
	Rebind(el *Element)
}

// Engine lays out sections of elements for a Host.
type Engine struct {
	host     Host
	registry *Registry
	children []*Element
	viewport Viewport

	requestPosition int
	requestOffset   int

	stickyDisabled      bool
	smoothScrollEnabled bool
	smooth              *SmoothScroller
	inPass              bool
}

// New returns an engine for host. A nil registry starts empty.
func New(host Host, registry *Registry) *Engine {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Engine{
		host:                host,
		registry:            registry,
		viewport:            host.Viewport(),
		requestPosition:     noPositionRequest,
		smoothScrollEnabled: true,
	}
}

// RegisterStrategy installs s for sections whose elements carry id.
func (e *Engine) RegisterStrategy(id int, s Strategy) {
	e.registry.Register(id, s)
}

// Registry returns the strategy registry.
func (e *Engine) Registry() *Registry { return e.registry }

// ChildCount returns the number of attached elements.
func (e *Engine) ChildCount() int { return len(e.children) }

// ChildAt returns the attached element at index i.
func (e *Engine) ChildAt(i int) *Element { return e.children[i] }

// Children returns the attached elements in drawing order.
func (e *Engine) Children() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// Viewport returns the geometry used by the last pass.
func (e *Engine) Viewport() Viewport { return e.viewport }

// Width returns the viewport width of the last pass.
func (e *Engine) Width() int { return e.viewport.Width }

// Height returns the viewport height of the last pass.
func (e *Engine) Height() int { return e.viewport.Height }

// StickyDisabled reports whether sticky headers are suppressed.
func (e *Engine) StickyDisabled() bool { return e.stickyDisabled }

// SmoothScrollEnabled reports whether scroll metrics use fractional content.
func (e *Engine) SmoothScrollEnabled() bool { return e.smoothScrollEnabled }

// SetSmoothScrollEnabled switches scroll metrics between fractional content
// and whole children.
func (e *Engine) SetSmoothScrollEnabled(enabled bool) { e.smoothScrollEnabled = enabled }

// Relayout rebuilds the attached window around the pending position request
// or, without one, around the top-most visible item.
func (e *Engine) Relayout() error {
	state, err := e.beginPass()
	if err != nil {
		return err
	}
	defer e.endPass(state)

	itemCount := state.ItemCount
	if itemCount == 0 {
		state.DetachAndCacheAllViews()
		events.Layout.Empty()
		return nil
	}

	var requested, borderLine int
	if e.requestPosition != noPositionRequest {
		requested, borderLine = e.requestPosition, e.requestOffset
		e.requestPosition, e.requestOffset = noPositionRequest, 0
	} else if anchor := e.anchorChild(itemCount); anchor != nil {
		requested, borderLine = anchor.Position, anchor.rect.Top
	} else {
		requested, borderLine = 0, e.viewport.PaddingTop
	}

	if requested < 0 || requested >= itemCount {
		logging.Errorf("layout: ignored anchor %d outside item range 0 - %d", requested, itemCount)
		events.Layout.PositionIgnored(requested, itemCount)
		return nil
	}

	state.DetachAndCacheAllViews()

	anchorPosition, err := e.determineAnchorPosition(state, requested)
	if err != nil {
		return err
	}
	if err := e.fill(state, anchorPosition, borderLine); err != nil {
		return err
	}
	events.Layout.Relayout(anchorPosition, borderLine, len(e.children))
	return nil
}

func (e *Engine) beginPass() (*LayoutState, error) {
	if e.inPass {
		return nil, ErrReentrantPass
	}
	e.inPass = true
	e.viewport = e.host.Viewport()
	return newLayoutState(e), nil
}

func (e *Engine) endPass(state *LayoutState) {
	defer func() { e.inPass = false }()
	state.RecycleCache()
}

func (e *Engine) strategyFor(section *SectionData) (Strategy, error) {
	s, err := e.registry.Lookup(section.StrategyID)
	if err != nil {
		return nil, err
	}
	section.loadMargins(s)
	return s, nil
}

func (e *Engine) determineAnchorPosition(state *LayoutState, position int) (int, error) {
	section := newSectionData(state, DirectionNone, position, 0)
	if section.FirstPosition == position && section.HasHeader && section.HeaderParams.IsHeaderInline() {
		return position, nil
	}
	s, err := e.strategyFor(section)
	if err != nil {
		return 0, err
	}
	return s.AnchorPosition(state, section, position), nil
}

func (e *Engine) fill(state *LayoutState, anchorPosition, borderLine int) error {
	section := newSectionData(state, DirectionNone, anchorPosition, borderLine)
	s, err := e.strategyFor(section)
	if err != nil {
		return err
	}
	anchorResult := s.Fill(state, section)
	anchorResult = e.layoutAndAddHeader(state, section, anchorResult)

	if _, err := e.fillSections(state, anchorResult, DirectionStart); err != nil {
		return err
	}
	if _, err := e.fillSections(state, anchorResult, DirectionEnd); err != nil {
		return err
	}
	return nil
}

// fillSections lays out whole sections next to fr until the viewport edge in
// direction is covered or the data set runs out.
func (e *Engine) fillSections(state *LayoutState, fr FillResult, direction Direction) (FillResult, error) {
	for {
		var section *SectionData
		if direction == DirectionEnd {
			anchor := fr.PositionEnd + 1
			if fr.MarkerEnd >= e.viewport.Height || anchor >= state.ItemCount {
				return fr, nil
			}
			section = newSectionData(state, direction, anchor, fr.MarkerEnd)
		} else {
			anchor := fr.PositionStart - 1
			if fr.MarkerStart <= 0 || anchor < 0 {
				return fr, nil
			}
			section = newSectionData(state, direction, anchor, fr.MarkerStart)
		}
		s, err := e.strategyFor(section)
		if err != nil {
			return fr, err
		}
		fr = s.Fill(state, section)
		fr = e.layoutAndAddHeader(state, section, fr)
	}
}

// anchorChild returns the top-most attached item that is at least partly
// visible, falling back to the first attached item.
func (e *Engine) anchorChild(itemCount int) *Element {
	var best, fallback *Element
	for _, child := range e.children {
		if child.Params.IsHeader || child.Position < 0 || child.Position >= itemCount {
			continue
		}
		if fallback == nil {
			fallback = child
		}
		if child.rect.Bottom <= 0 || child.rect.Top >= e.viewport.Height {
			continue
		}
		if best == nil || child.rect.Top < best.rect.Top ||
			(child.rect.Top == best.rect.Top && child.Position < best.Position) {
			best = child
		}
	}
	if best != nil {
		return best
	}
	return fallback
}

func (e *Engine) childForPosition(position int) *Element {
	for _, child := range e.children {
		if child.Position == position {
			return child
		}
	}
	return nil
}

func (e *Engine) indexOf(el *Element) int {
	for i, child := range e.children {
		if child == el {
			return i
		}
	}
	return -1
}

func (e *Engine) insertChild(el *Element, index int) {
	if index < 0 || index >= len(e.children) {
		e.children = append(e.children, el)
		return
	}
	e.children = append(e.children, nil)
	copy(e.children[index+1:], e.children[index:])
	e.children[index] = el
}

func (e *Engine) removeChild(el *Element) bool {
	i := e.indexOf(el)
	if i < 0 {
		return false
	}
	copy(e.children[i:], e.children[i+1:])
	e.children[len(e.children)-1] = nil
	e.children = e.children[:len(e.children)-1]
	return true
}

func (e *Engine) measure(el *Element, widthUsed, heightUsed int) {
	w, h := e.host.Measure(el, widthUsed, heightUsed)
	el.measuredWidth, el.measuredHeight = w, h
	el.measured = true
}

func (e *Engine) offsetChildren(dy int) {
	for _, child := range e.children {
		child.rect = child.rect.offset(dy)
	}
}

// ScrollToPosition queues a layout anchored on position at the leading edge.
// Positions outside the data set are logged and ignored.
func (e *Engine) ScrollToPosition(position int) bool {
	if !e.validTarget("scroll", position) {
		return false
	}
	e.requestPosition = position
	e.requestOffset = e.host.Viewport().PaddingTop
	e.host.RequestLayout()
	return true
}

func (e *Engine) validTarget(kind string, position int) bool {
	count := e.host.ItemCount()
	if position < 0 || position >= count {
		logging.Errorf("layout: ignored %s to %d as it is not within the item range 0 - %d", kind, position, count)
		events.Layout.PositionIgnored(position, count)
		return false
	}
	return true
}

// SaveState captures the anchor item and its offset from the leading edge.
func (e *Engine) SaveState() SavedState {
	anchor := e.anchorChild(e.host.ItemCount())
	if anchor == nil {
		return SavedState{}
	}
	return SavedState{AnchorPosition: anchor.Position, AnchorOffset: anchor.rect.Top}
}

// RestoreState queues a layout anchored on a saved state.
func (e *Engine) RestoreState(s SavedState) {
	e.requestPosition = s.AnchorPosition
	e.requestOffset = s.AnchorOffset
	e.host.RequestLayout()
}

// OnItemsUpdated invalidates attached elements in the changed range and
// requests a layout when the range touches the attached window.
func (e *Engine) OnItemsUpdated(positionStart, itemCount int) bool {
	if len(e.children) == 0 || itemCount <= 0 {
		return false
	}
	lowest, highest := e.children[0].Position, e.children[0].Position
	for _, child := range e.children {
		lowest = min(lowest, child.Position)
		highest = max(highest, child.Position)
	}
	if positionStart+itemCount <= lowest || positionStart > highest {
		return false
	}
	rebinder, _ := e.host.(Rebinder)
	for _, child := range e.children {
		if child.Position < positionStart || child.Position >= positionStart+itemCount {
			continue
		}
		if rebinder != nil {
			rebinder.Rebind(child)
		}
		child.Invalidate()
	}
	e.host.RequestLayout()
	return true
}

// OnDataSetChanged releases every attached element; the next layout starts
// from the top.
func (e *Engine) OnDataSetChanged() {
	for _, child := range e.children {
		e.host.Recycle(child)
	}
	e.children = e.children[:0]
	e.requestPosition, e.requestOffset = noPositionRequest, 0
	e.host.RequestLayout()
}
