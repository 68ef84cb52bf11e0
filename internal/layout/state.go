package layout

import (
	"sort"

	"github.com/atomicstack/sectionlist/internal/logging/events"
)

// ViewRef is an element handed out by LayoutState.GetView together with where
// it came from.
type ViewRef struct {
	Element *Element
	// WasCached is set when the element was detached earlier in this pass or
	// left over from the previous one.
	WasCached bool
	// Attached is set when the element is already a child.
	Attached bool
}

// Params returns the metadata of the referenced element.
func (r ViewRef) Params() Params { return r.Element.Params }

// LayoutState is the per-pass store of detached elements. Elements that are
// cached and not reattached before the pass ends are released to the host.
type LayoutState struct {
	Engine    *Engine
	ItemCount int
	IsLTR     bool

	cache    map[int]*Element
	released int
}

func newLayoutState(e *Engine) *LayoutState {
	return &LayoutState{
		Engine:    e,
		ItemCount: e.host.ItemCount(),
		IsLTR:     !e.viewport.RTL,
		cache:     make(map[int]*Element),
	}
}

// GetView returns the element for position: an attached child, a cached
// element, or a fresh one from the host. Fresh elements are cached straight
// away so they are released if nobody attaches them.
func (s *LayoutState) GetView(position int) ViewRef {
	if el := s.Engine.childForPosition(position); el != nil {
		return ViewRef{Element: el, Attached: true}
	}
	if el, ok := s.cache[position]; ok {
		return ViewRef{Element: el, WasCached: true}
	}
	el := s.Engine.host.Obtain(position)
	el.Position = position
	s.cache[position] = el
	return ViewRef{Element: el}
}

// CacheView keeps el detached but alive for the rest of the pass. An element
// already cached for the same position is released.
func (s *LayoutState) CacheView(position int, el *Element) {
	if old, ok := s.cache[position]; ok && old != el {
		s.release(old)
	}
	s.cache[position] = el
}

// DecacheView reattaches the element cached for position at index and
// returns it, or returns nil when nothing is cached there.
func (s *LayoutState) DecacheView(position, index int) *Element {
	el, ok := s.cache[position]
	if !ok {
		return nil
	}
	s.AddView(el, index)
	return el
}

// CachedView returns the cached element for position or nil.
func (s *LayoutState) CachedView(position int) *Element {
	return s.cache[position]
}

// CachedCount returns the number of cached elements.
func (s *LayoutState) CachedCount() int {
	return len(s.cache)
}

// Released returns how many elements this state handed back to the host.
func (s *LayoutState) Released() int {
	return s.released
}

// RecycleCache releases every cached element in ascending position order.
func (s *LayoutState) RecycleCache() {
	if len(s.cache) == 0 {
		return
	}
	positions := make([]int, 0, len(s.cache))
	for pos := range s.cache {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	for _, pos := range positions {
		s.release(s.cache[pos])
	}
	s.cache = make(map[int]*Element)
	events.Cache.Flush(positions)
}

// DetachAndCacheAllViews moves every child into the cache.
func (s *LayoutState) DetachAndCacheAllViews() {
	for _, child := range s.Engine.children {
		s.CacheView(child.Position, child)
	}
	s.Engine.children = s.Engine.children[:0]
}

// AddView attaches el at index, or at the end when index is negative or past
// the end. A cached el is removed from the cache.
func (s *LayoutState) AddView(el *Element, index int) {
	if s.cache[el.Position] == el {
		delete(s.cache, el.Position)
	}
	s.Engine.insertChild(el, index)
}

// DetachView removes el from the children and caches it.
func (s *LayoutState) DetachView(el *Element) {
	if s.Engine.removeChild(el) {
		s.CacheView(el.Position, el)
	}
}

// Measure measures el through the host and stores the result.
func (s *LayoutState) Measure(el *Element, widthUsed, heightUsed int) {
	s.Engine.measure(el, widthUsed, heightUsed)
}

// LayoutElement positions el.
func (s *LayoutState) LayoutElement(el *Element, r Rect) {
	el.rect = r
}

func (s *LayoutState) release(el *Element) {
	s.released++
	s.Engine.host.Recycle(el)
}
