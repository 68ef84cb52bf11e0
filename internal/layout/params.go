package layout

import "errors"

// HeaderDisplay is a bitmask describing how a section header is drawn.
type HeaderDisplay int

const (
	HeaderInline     HeaderDisplay = 0x01
	HeaderAlignStart HeaderDisplay = 0x02
	HeaderAlignEnd   HeaderDisplay = 0x04
	HeaderOverlay    HeaderDisplay = 0x08
	HeaderSticky     HeaderDisplay = 0x10

	DefaultHeaderDisplay = HeaderInline | HeaderSticky
)

const noFirstPosition = -1

var (
	// ErrMissingFirstPosition is the panic value raised when a section first
	// position is read before it was set.
	ErrMissingFirstPosition = errors.New("layout: missing section first position")
	// ErrInvalidFirstPosition is returned when a negative first position is set.
	ErrInvalidFirstPosition = errors.New("layout: invalid section first position")
)

// Params is the section metadata carried by every element. The host's data
// binding fills it in before the element is handed to the engine.
type Params struct {
	IsHeader              bool
	HeaderDisplay         HeaderDisplay
	StrategyID            int
	HeaderMarginStart     int
	HeaderMarginEnd       int
	HeaderStartMarginAuto bool
	HeaderEndMarginAuto   bool

	firstPosition int
}

// NewParams returns metadata with the default header display, auto margins
// and no first position.
func NewParams() Params {
	return Params{
		HeaderDisplay:         DefaultHeaderDisplay,
		HeaderStartMarginAuto: true,
		HeaderEndMarginAuto:   true,
		firstPosition:         noFirstPosition,
	}
}

// SetFirstPosition records the first position of the owning section.
func (p *Params) SetFirstPosition(position int) error {
	if position < 0 {
		return ErrInvalidFirstPosition
	}
	p.firstPosition = position
	return nil
}

// FirstPosition returns the first position of the owning section. Reading it
// before SetFirstPosition is a programming error and panics.
func (p Params) FirstPosition() int {
	if p.firstPosition < 0 {
		panic(ErrMissingFirstPosition)
	}
	return p.firstPosition
}

// LookupFirstPosition is the non-panicking form of FirstPosition.
func (p Params) LookupFirstPosition() (int, bool) {
	if p.firstPosition < 0 {
		return 0, false
	}
	return p.firstPosition, true
}

// HasFlags reports whether every bit in flags is set.
func (p Params) HasFlags(flags HeaderDisplay) bool {
	return p.HeaderDisplay&flags == flags
}

func (p Params) IsHeaderInline() bool       { return p.HeaderDisplay&HeaderInline != 0 }
func (p Params) IsHeaderOverlay() bool      { return p.HeaderDisplay&HeaderOverlay != 0 }
func (p Params) IsHeaderSticky() bool       { return p.HeaderDisplay&HeaderSticky != 0 }
func (p Params) IsHeaderStartAligned() bool { return p.HeaderDisplay&HeaderAlignStart != 0 }
func (p Params) IsHeaderEndAligned() bool   { return p.HeaderDisplay&HeaderAlignEnd != 0 }

// consumesSpace reports whether the header pushes section content down.
func (p Params) consumesSpace() bool {
	return p.IsHeaderInline() && !p.IsHeaderOverlay()
}
