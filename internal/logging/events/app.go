package events

import "github.com/skygen-app/skygen/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Stop(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.stop", payload)
}

func (AppTracer) Resolve(url string) {
	logging.Trace("app.resolve", map[string]interface{}{"url": url})
}

func (AppTracer) Send(inbox, url string) {
	logging.Trace("app.send", map[string]interface{}{"inbox": inbox, "url": url})
}
