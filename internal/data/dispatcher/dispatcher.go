package dispatcher

import (
	"github.com/atomicstack/sectionlist/internal/backend"
	"github.com/atomicstack/sectionlist/internal/fixture"
	"github.com/atomicstack/sectionlist/internal/layout"
	"github.com/atomicstack/sectionlist/internal/logging/events"
	"github.com/atomicstack/sectionlist/internal/screen"
)

type Result struct {
	Reloaded bool
	Filtered bool
	Rows     int
	Err      error
}

// Dispatcher applies data changes to the screen and tells the engine about
// them, keeping the unfiltered data set and the active query.
type Dispatcher struct {
	base   fixture.DataSet
	query  string
	screen *screen.Screen
	engine *layout.Engine
}

func New(base fixture.DataSet, s *screen.Screen, e *layout.Engine) *Dispatcher {
	return &Dispatcher{base: base, screen: s, engine: e}
}

// Base returns the unfiltered data set.
func (d *Dispatcher) Base() fixture.DataSet { return d.base }

// Query returns the active filter.
func (d *Dispatcher) Query() string { return d.query }

// Handle applies a backend event. A reload keeps the current anchor when it
// is still inside the new data set.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	if evt.Err != nil {
		events.Action.Error(evt.Err)
		return Result{Err: evt.Err}
	}
	switch evt.Kind {
	case backend.KindReload:
		d.base = evt.Data
		for _, spec := range evt.Data.Strategies {
			d.engine.Registry().Register(spec.ID, spec.Strategy())
		}
		rows := d.apply(true)
		return Result{Reloaded: true, Rows: rows}
	}
	return Result{}
}

// SetFilter narrows the visible rows to query and returns to the top.
func (d *Dispatcher) SetFilter(query string) Result {
	if query == d.query {
		return Result{Rows: d.screen.ItemCount()}
	}
	d.query = query
	rows := d.apply(false)
	if query == "" {
		events.Filter.Cleared()
	} else {
		events.Filter.Applied(query, rows)
	}
	return Result{Filtered: true, Rows: rows}
}

func (d *Dispatcher) apply(keepAnchor bool) int {
	saved := d.engine.SaveState()
	hadChildren := d.engine.ChildCount() > 0
	data := d.base.Filter(d.query)
	d.screen.SetData(data)
	d.engine.OnDataSetChanged()
	if keepAnchor && hadChildren && saved.AnchorPosition < data.Len() {
		d.engine.RestoreState(saved)
	}
	return data.Len()
}
