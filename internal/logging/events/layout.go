package events

import "github.com/atomicstack/sectionlist/internal/logging"

type LayoutTracer struct{}

type ScrollTracer struct{}

type CacheTracer struct{}

var (
	Layout = LayoutTracer{}
	Scroll = ScrollTracer{}
	Cache  = CacheTracer{}
)

func (LayoutTracer) Relayout(anchor, borderLine, children int) {
	logging.Trace("layout.relayout", map[string]interface{}{
		"anchor":   anchor,
		"border":   borderLine,
		"children": children,
	})
}

func (LayoutTracer) Empty() {
	logging.Trace("layout.empty", nil)
}

func (LayoutTracer) PositionIgnored(position, itemCount int) {
	logging.Trace("layout.position.ignored", map[string]interface{}{"position": position, "items": itemCount})
}

func (ScrollTracer) By(requested, applied, children int) {
	logging.Trace("scroll.by", map[string]interface{}{
		"requested": requested,
		"applied":   applied,
		"children":  children,
	})
}

func (ScrollTracer) Section(direction string, firstPosition, marker int) {
	logging.Trace("scroll.section", map[string]interface{}{
		"direction": direction,
		"section":   firstPosition,
		"marker":    marker,
	})
}

func (ScrollTracer) SmoothStart(target int) {
	logging.Trace("scroll.smooth.start", map[string]interface{}{"target": target})
}

func (ScrollTracer) SmoothStop(target int) {
	logging.Trace("scroll.smooth.stop", map[string]interface{}{"target": target})
}

func (CacheTracer) Flush(positions []int) {
	logging.Trace("cache.flush", map[string]interface{}{"positions": positions})
}
