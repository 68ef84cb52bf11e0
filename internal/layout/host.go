package layout

// Viewport describes the area the engine lays elements out in.
type Viewport struct {
	Width         int
	Height        int
	PaddingTop    int
	PaddingBottom int
	PaddingStart  int
	PaddingEnd    int
	RTL           bool
}

func (v Viewport) paddingLeft() int {
	if v.RTL {
		return v.PaddingEnd
	}
	return v.PaddingStart
}

// Host is the toolkit side of the engine. All calls happen on the goroutine
// that drives the engine.
type Host interface {
	// ItemCount returns the number of positions in the data set.
	ItemCount() int
	// Obtain returns an element bound to position, taken from the host's
	// recycling pool or newly created. Params must be filled in.
	Obtain(position int) *Element
	// Recycle hands an element back to the pool. The engine never touches it
	// again.
	Recycle(el *Element)
	// Measure returns the size of el given the space already used along each
	// axis.
	Measure(el *Element, widthUsed, heightUsed int) (width, height int)
	// Viewport returns the current viewport geometry.
	Viewport() Viewport
	// RequestLayout asks the host to call Engine.Relayout before the next
	// frame.
	RequestLayout()
}
