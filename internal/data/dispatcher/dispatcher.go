package dispatcher

import (
	"github.com/skygen-app/skygen/internal/backend"
	"github.com/skygen-app/skygen/internal/logging"
	"github.com/skygen-app/skygen/internal/logging/events"
	"github.com/skygen-app/skygen/internal/navigation"
)

type Result struct {
	Pending navigation.Pending
	Handled bool
}

type Dispatcher struct {
	manager *navigation.Manager
}

func New(m *navigation.Manager) *Dispatcher {
	return &Dispatcher{manager: m}
}

// Handle applies one inbox event. Errors are logged and leave navigation
// state untouched.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		logging.Error(evt.Err)
		return res
	}
	if evt.URL == "" || d.manager == nil {
		return res
	}
	events.Link.Open(evt.URL, events.SourceInbox)
	res.Pending = d.manager.HandleURL(evt.URL)
	res.Handled = true
	return res
}
