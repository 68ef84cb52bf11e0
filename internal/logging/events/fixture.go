package events

import "github.com/atomicstack/sectionlist/internal/logging"

type FixtureTracer struct{}

var Fixture = FixtureTracer{}

func (FixtureTracer) Load(path string, sections, rows int) {
	logging.Trace("fixture.load", map[string]interface{}{"path": path, "sections": sections, "rows": rows})
}

func (FixtureTracer) Reload(path string) {
	logging.Trace("fixture.reload", map[string]interface{}{"path": path})
}

func (FixtureTracer) Filter(query string, rows int) {
	logging.Trace("fixture.filter", map[string]interface{}{"query": query, "rows": rows})
}
