package layout

// Direction is the fill direction of a layout operation.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionStart
	DirectionEnd
)

func (d Direction) String() string {
	switch d {
	case DirectionStart:
		return "start"
	case DirectionEnd:
		return "end"
	default:
		return "none"
	}
}

// NoPosition is returned by queries that found nothing.
const NoPosition = -1

// Rect is an element rectangle in viewport coordinates. Right and Bottom are
// exclusive.
type Rect struct {
	Left, Top, Right, Bottom int
}

func (r Rect) Width() int  { return r.Right - r.Left }
func (r Rect) Height() int { return r.Bottom - r.Top }

func (r Rect) offset(dy int) Rect {
	r.Top += dy
	r.Bottom += dy
	return r
}

// Element is a visual element bound to one data position. Content is owned by
// the host; Params is read and written by the engine.
type Element struct {
	Position int
	Params   Params
	Content  interface{}

	rect           Rect
	measuredWidth  int
	measuredHeight int
	measured       bool
}

// NewElement returns an element for position with default metadata.
func NewElement(position int) *Element {
	return &Element{Position: position, Params: NewParams()}
}

// Rect returns the laid out rectangle.
func (e *Element) Rect() Rect { return e.rect }

// Measured returns the last measured size.
func (e *Element) Measured() (width, height int) { return e.measuredWidth, e.measuredHeight }

// IsMeasured reports whether the element holds a valid measurement.
func (e *Element) IsMeasured() bool { return e.measured }

// Invalidate forces the next layout to measure the element again.
func (e *Element) Invalidate() { e.measured = false }

// Reset clears layout state so a pooled element can be rebound.
func (e *Element) Reset(position int) {
	e.Position = position
	e.Params = NewParams()
	e.Content = nil
	e.rect = Rect{}
	e.measuredWidth, e.measuredHeight = 0, 0
	e.measured = false
}

func (e *Element) sectionFirstPosition() int { return e.Params.FirstPosition() }
