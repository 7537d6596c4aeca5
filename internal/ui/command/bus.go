package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/skygen-app/skygen/internal/logging/events"
)

// Request encapsulates a deferred UI action.
type Request struct {
	ID      string
	Label   string
	Handler func() tea.Msg
}

// Bus coordinates the execution of UI actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a request into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		msg := req.Handler()
		if msg == nil {
			events.Command.NoOp(req.ID, req.Label)
			return nil
		}
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
