package events

import "github.com/skygen-app/skygen/internal/logging"

type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Dispatch(link, pushed string) {
	logging.Trace("nav.dispatch", map[string]interface{}{"link": link, "pushed": pushed})
}

func (NavTracer) Push(tab, destination string) {
	logging.Trace("nav.push", map[string]interface{}{"tab": tab, "destination": destination})
}

func (NavTracer) Pop(tab, destination string) {
	logging.Trace("nav.pop", map[string]interface{}{"tab": tab, "destination": destination})
}

func (NavTracer) Reset(tab string) {
	logging.Trace("nav.reset", map[string]interface{}{"tab": tab})
}

func (NavTracer) Tab(tab string) {
	logging.Trace("nav.tab", map[string]interface{}{"tab": tab})
}
