package app

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/atomicstack/sectionlist/internal/backend"
	"github.com/atomicstack/sectionlist/internal/fixture"
	"github.com/atomicstack/sectionlist/internal/format/table"
	"github.com/atomicstack/sectionlist/internal/layout"
	"github.com/atomicstack/sectionlist/internal/screen"
	"github.com/atomicstack/sectionlist/internal/state"
	"github.com/atomicstack/sectionlist/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	FixturePath   string
	StateFile     string
	Width         int
	Height        int
	RTL           bool
	ScrollStep    int
	SmoothStep    int
	WatchInterval time.Duration
	NoSticky      bool
}

func (c Config) fixtureOptions() fixture.Options {
	return fixture.Options{NoSticky: c.NoSticky}
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	data, err := fixture.Load(cfg.FixturePath, cfg.fixtureOptions())
	if err != nil {
		return err
	}
	store, err := state.Open(cfg.StateFile)
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}
	watcher := backend.NewWatcher(cfg.FixturePath, cfg.WatchInterval, cfg.fixtureOptions())
	defer watcher.Stop()
	model := ui.NewModel(ui.Options{
		Data:       data,
		Width:      cfg.Width,
		Height:     cfg.Height,
		RTL:        cfg.RTL,
		ScrollStep: cfg.ScrollStep,
		SmoothStep: cfg.SmoothStep,
		Watcher:    watcher,
		Store:      store,
		StoreKey:   state.Key(cfg.FixturePath),
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

const (
	dumpWidth  = 40
	dumpHeight = 12
)

// DumpOptions selects the scroll position a dump is taken at.
type DumpOptions struct {
	Position int // snapped to the top first when >= 0
	ScrollBy int
	Children bool // append the attached elements and their rectangles
}

// Dump lays the data set out once without a terminal and writes the plain
// rows to w.
func Dump(cfg Config, w io.Writer, opts DumpOptions) error {
	data, err := fixture.Load(cfg.FixturePath, cfg.fixtureOptions())
	if err != nil {
		return err
	}
	vp := layout.Viewport{Width: cfg.Width, Height: cfg.Height, RTL: cfg.RTL}
	if vp.Width <= 0 {
		vp.Width = dumpWidth
	}
	if vp.Height <= 0 {
		vp.Height = dumpHeight
	}
	s := screen.New(data, vp)
	engine := layout.New(s, data.Registry())
	if err := engine.Relayout(); err != nil {
		return err
	}
	if opts.Position >= 0 && engine.ScrollToPosition(opts.Position) {
		if err := engine.Relayout(); err != nil {
			return err
		}
	}
	if opts.ScrollBy != 0 {
		if _, err := engine.ScrollBy(opts.ScrollBy); err != nil {
			return err
		}
	}
	for _, line := range s.RenderPlain(engine.Children()) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if !opts.Children {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, line := range childTable(engine.Children(), data) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func childTable(children []*layout.Element, data fixture.DataSet) []string {
	rows := [][]string{{"POS", "KIND", "LEFT", "TOP", "RIGHT", "BOTTOM", "TEXT"}}
	for _, child := range children {
		kind := "item"
		if child.Params.IsHeader {
			kind = "header"
		}
		var text string
		if row, ok := data.Row(child.Position); ok {
			text = row.Text
		}
		r := child.Rect()
		rows = append(rows, []string{
			strconv.Itoa(child.Position),
			kind,
			strconv.Itoa(r.Left),
			strconv.Itoa(r.Top),
			strconv.Itoa(r.Right),
			strconv.Itoa(r.Bottom),
			text,
		})
	}
	align := []table.Alignment{
		table.AlignRight, table.AlignLeft,
		table.AlignRight, table.AlignRight, table.AlignRight, table.AlignRight,
		table.AlignLeft,
	}
	return table.Format(rows, align)
}
