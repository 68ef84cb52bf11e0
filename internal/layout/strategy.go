package layout

import "fmt"

// FillResult records what a strategy laid out during one fill.
type FillResult struct {
	// MarkerStart and MarkerEnd bound the newly filled content.
	MarkerStart int
	MarkerEnd   int
	// PositionStart and PositionEnd bound the filled positions. When nothing
	// was filled PositionEnd is PositionStart-1.
	PositionStart int
	PositionEnd   int
	// FirstChildIndex is the child index of the first added element.
	FirstChildIndex int
	AddedChildCount int
	// HeaderOffset shifts non-inline headers up when negative. The built-in
	// strategies leave it at zero; it is there for strategies that draw a
	// header partly over content laid out above the section.
	HeaderOffset int
}

// Strategy lays out the body of a section. Implementations must not assume
// any element is attached, must return markers that move away from the
// anchor in the fill direction, and must give the same result for the same
// input.
type Strategy interface {
	// Fill lays out the section described by section from its anchor in
	// section.Direction until the viewport is covered or the section ends.
	Fill(state *LayoutState, section *SectionData) FillResult
	// FillToEnd continues the section from anchorPosition downward, starting
	// at markerLine, until leadingEdge is reached. It returns the new marker.
	FillToEnd(state *LayoutState, section *SectionData, leadingEdge, markerLine, anchorPosition int) int
	// FillToStart continues the section from anchorPosition upward, ending at
	// markerLine, until leadingEdge is reached. It returns the new marker.
	FillToStart(state *LayoutState, section *SectionData, leadingEdge, markerLine, anchorPosition int) int
	// AnchorPosition maps a requested position to the position the strategy
	// anchors a layout on.
	AnchorPosition(state *LayoutState, section *SectionData, position int) int

	FirstVisibleItemPosition(e *Engine, sectionFirstPosition int) int
	FirstCompletelyVisibleItemPosition(e *Engine, sectionFirstPosition int) int
	LastVisibleItemPosition(e *Engine, sectionFirstPosition int) int
	LastCompletelyVisibleItemPosition(e *Engine, sectionFirstPosition int) int

	// HighestEdge returns the top of the section's attached content or bound.
	HighestEdge(e *Engine, sectionFirstPosition, bound int) int
	// LowestEdge returns the bottom of the section's attached content or bound.
	LowestEdge(e *Engine, sectionFirstPosition, bound int) int

	// HowManyMissingAbove estimates positions between firstPosition and the
	// known offscreen positions that were never laid out.
	HowManyMissingAbove(firstPosition int, offscreen map[int]bool) int
	HowManyMissingBelow(lastPosition int, offscreen map[int]bool) int
}

// MarginResolver is implemented by strategies that size auto header margins
// themselves.
type MarginResolver interface {
	ResolveMargins(section *SectionData) (start, end int)
}

// UnknownStrategyError reports a section that references an unregistered
// strategy id.
type UnknownStrategyError struct {
	ID int
}

func (e *UnknownStrategyError) Error() string {
	return fmt.Sprintf("layout: no registered strategy for id %d", e.ID)
}

// Registry maps strategy ids to strategies.
type Registry struct {
	strategies map[int]Strategy
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[int]Strategy)}
}

// Register installs s under id, replacing any previous strategy.
func (r *Registry) Register(id int, s Strategy) {
	r.strategies[id] = s
}

// Lookup returns the strategy for id.
func (r *Registry) Lookup(id int) (Strategy, error) {
	s, ok := r.strategies[id]
	if !ok || s == nil {
		return nil, &UnknownStrategyError{ID: id}
	}
	return s, nil
}

// Len returns the number of registered strategies.
func (r *Registry) Len() int {
	return len(r.strategies)
}
