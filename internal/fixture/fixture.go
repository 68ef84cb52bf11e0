// Package fixture loads the sectioned data set shown by the list. A fixture
// is a YAML document listing strategies and sections; Build flattens it into
// the adapter rows the layout engine binds elements to.
package fixture

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atomicstack/sectionlist/internal/layout"
	"github.com/atomicstack/sectionlist/internal/logging/events"
	"gopkg.in/yaml.v3"
)

//go:embed sample.yaml
var sampleYAML []byte

const (
	KindLinear = "linear"
	KindGrid   = "grid"
)

var (
	ErrNoSections      = errors.New("fixture: no sections")
	ErrUnknownDisplay  = errors.New("fixture: unknown header display")
	ErrUnknownKind     = errors.New("fixture: unknown strategy kind")
	ErrUndeclaredStrat = errors.New("fixture: undeclared strategy")
)

// File is the on-disk document.
type File struct {
	Strategies []StrategySpec `yaml:"strategies,omitempty"`
	Sections   []Section      `yaml:"sections"`
}

// StrategySpec declares a layout strategy under an id.
type StrategySpec struct {
	ID      int    `yaml:"id"`
	Kind    string `yaml:"kind"`
	Columns int    `yaml:"columns,omitempty"`
}

// Section is one titled group of items.
type Section struct {
	Title    string   `yaml:"title"`
	Strategy int      `yaml:"strategy,omitempty"`
	Header   Header   `yaml:"header,omitempty"`
	Items    []string `yaml:"items"`
}

// Header controls how the section title is drawn. Nil margins mean auto.
type Header struct {
	Display     []string `yaml:"display,omitempty"`
	Hidden      bool     `yaml:"hidden,omitempty"`
	MarginStart *int     `yaml:"margin_start,omitempty"`
	MarginEnd   *int     `yaml:"margin_end,omitempty"`
}

// Options alter how a file is flattened.
type Options struct {
	NoSticky bool
}

// Row is one adapter position.
type Row struct {
	Text    string
	Section int
	Params  layout.Params
}

// IsHeader reports whether the row is a section header.
func (r Row) IsHeader() bool { return r.Params.IsHeader }

// DataSet is a flattened file.
type DataSet struct {
	Strategies []StrategySpec
	Sections   []Section
	Rows       []Row
	Options    Options
}

var defaultStrategies = []StrategySpec{
	{ID: 0, Kind: KindLinear},
	{ID: 1, Kind: KindGrid, Columns: 2},
}

var displayNames = map[string]layout.HeaderDisplay{
	"inline":  layout.HeaderInline,
	"start":   layout.HeaderAlignStart,
	"end":     layout.HeaderAlignEnd,
	"overlay": layout.HeaderOverlay,
	"sticky":  layout.HeaderSticky,
}

// Parse decodes a YAML document.
func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("fixture: parse: %w", err)
	}
	return f, nil
}

// Load reads and flattens the file at path. An empty path loads the bundled
// sample.
func Load(path string, opts Options) (DataSet, error) {
	data := sampleYAML
	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return DataSet{}, fmt.Errorf("fixture: read %s: %w", path, err)
		}
		data = raw
	}
	f, err := Parse(data)
	if err != nil {
		return DataSet{}, err
	}
	ds, err := Build(f, opts)
	if err != nil {
		return DataSet{}, err
	}
	events.Fixture.Load(path, len(ds.Sections), len(ds.Rows))
	return ds, nil
}

// Sample returns the bundled data set.
func Sample(opts Options) (DataSet, error) {
	return Load("", opts)
}

// Build validates f and flattens it into rows.
func Build(f File, opts Options) (DataSet, error) {
	if len(f.Sections) == 0 {
		return DataSet{}, ErrNoSections
	}
	strategies := f.Strategies
	if len(strategies) == 0 {
		strategies = defaultStrategies
	}
	declared := make(map[int]bool, len(strategies))
	for _, s := range strategies {
		if s.Kind != KindLinear && s.Kind != KindGrid {
			return DataSet{}, fmt.Errorf("%w %q for id %d", ErrUnknownKind, s.Kind, s.ID)
		}
		declared[s.ID] = true
	}
	for i, sec := range f.Sections {
		if !declared[sec.Strategy] {
			return DataSet{}, fmt.Errorf("%w %d in section %d (%s)", ErrUndeclaredStrat, sec.Strategy, i, sec.Title)
		}
		if _, err := headerDisplay(sec.Header, opts); err != nil {
			return DataSet{}, fmt.Errorf("section %d (%s): %w", i, sec.Title, err)
		}
	}
	ds := DataSet{
		Strategies: append([]StrategySpec(nil), strategies...),
		Sections:   f.Sections,
		Options:    opts,
	}
	rows, err := flatten(f.Sections, nil, opts)
	if err != nil {
		return DataSet{}, err
	}
	ds.Rows = rows
	return ds, nil
}

// flatten produces rows for sections. keep, when non-nil, selects the item
// indexes retained per section; sections with no retained items and no
// entry in keep are dropped.
func flatten(sections []Section, keep map[int][]int, opts Options) ([]Row, error) {
	var rows []Row
	for si, sec := range sections {
		items := make([]int, 0, len(sec.Items))
		if keep == nil {
			for i := range sec.Items {
				items = append(items, i)
			}
		} else {
			kept, ok := keep[si]
			if !ok {
				continue
			}
			items = kept
		}
		display, err := headerDisplay(sec.Header, opts)
		if err != nil {
			return nil, err
		}
		sfp := len(rows)
		base := layout.NewParams()
		base.StrategyID = sec.Strategy
		if err := base.SetFirstPosition(sfp); err != nil {
			return nil, fmt.Errorf("fixture: section %d: %w", si, err)
		}
		if !sec.Header.Hidden {
			header := base
			header.IsHeader = true
			header.HeaderDisplay = display
			if m := sec.Header.MarginStart; m != nil {
				header.HeaderMarginStart = *m
				header.HeaderStartMarginAuto = false
			}
			if m := sec.Header.MarginEnd; m != nil {
				header.HeaderMarginEnd = *m
				header.HeaderEndMarginAuto = false
			}
			rows = append(rows, Row{Text: sec.Title, Section: si, Params: header})
		}
		for _, i := range items {
			rows = append(rows, Row{Text: sec.Items[i], Section: si, Params: base})
		}
	}
	return rows, nil
}

func headerDisplay(h Header, opts Options) (layout.HeaderDisplay, error) {
	if len(h.Display) == 0 {
		d := layout.DefaultHeaderDisplay
		if opts.NoSticky {
			d &^= layout.HeaderSticky
		}
		return d, nil
	}
	var d layout.HeaderDisplay
	for _, name := range h.Display {
		flag, ok := displayNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, fmt.Errorf("%w %q", ErrUnknownDisplay, name)
		}
		d |= flag
	}
	if opts.NoSticky {
		d &^= layout.HeaderSticky
	}
	return d, nil
}

// Strategy returns a fresh strategy for the declaration.
func (s StrategySpec) Strategy() layout.Strategy {
	if s.Kind == KindGrid {
		return layout.NewGridStrategy(max(s.Columns, 1))
	}
	return layout.NewLinearStrategy()
}

// Registry builds a strategy registry for the declared strategies.
func (ds DataSet) Registry() *layout.Registry {
	r := layout.NewRegistry()
	for _, s := range ds.Strategies {
		r.Register(s.ID, s.Strategy())
	}
	return r
}

// Len returns the number of rows.
func (ds DataSet) Len() int { return len(ds.Rows) }

// Row returns the row at position.
func (ds DataSet) Row(position int) (Row, bool) {
	if position < 0 || position >= len(ds.Rows) {
		return Row{}, false
	}
	return ds.Rows[position], true
}

// SectionTitle returns the title of the section owning position.
func (ds DataSet) SectionTitle(position int) string {
	row, ok := ds.Row(position)
	if !ok {
		return ""
	}
	return ds.Sections[row.Section].Title
}

// Marshal encodes the data set back into its file form.
func (ds DataSet) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(File{Strategies: ds.Strategies, Sections: ds.Sections})
	if err != nil {
		return nil, fmt.Errorf("fixture: marshal: %w", err)
	}
	return data, nil
}
