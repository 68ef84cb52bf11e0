package events

import "github.com/atomicstack/sectionlist/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

// Start records the startup payload built by main.
func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Stop(reason string) {
	logging.Trace("app.stop", map[string]interface{}{"reason": reason})
}

// Resume records the saved anchor and filter a run starts from.
func (AppTracer) Resume(key string, anchor, offset int, filter string) {
	logging.Trace("app.resume", map[string]interface{}{
		"key":    key,
		"anchor": anchor,
		"offset": offset,
		"filter": filter,
	})
}
