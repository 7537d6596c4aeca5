package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives the UI model programmatically for integration tests.
// Delayed messages are recorded rather than slept on; FireTimers delivers
// them.
type Harness struct {
	model  *Model
	timers []scheduled
}

type scheduled struct {
	delay time.Duration
	msg   tea.Msg
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	h := &Harness{model: model}
	if model != nil {
		model.schedule = h.record
		model.cursorMode = cursor.CursorStatic
		model.filterCursor.SetMode(cursor.CursorStatic)
	}
	return h
}

func (h *Harness) record(d time.Duration, msg tea.Msg) tea.Cmd {
	h.timers = append(h.timers, scheduled{delay: d, msg: msg})
	return nil
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		mdl, next := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		cmd = next
	}
}

// Pending reports how many delayed messages are waiting.
func (h *Harness) Pending() int {
	return len(h.timers)
}

// Delays returns the requested delay of each waiting message.
func (h *Harness) Delays() []time.Duration {
	out := make([]time.Duration, len(h.timers))
	for i, t := range h.timers {
		out[i] = t.delay
	}
	return out
}

// FireTimers delivers every waiting message in the order it was scheduled.
func (h *Harness) FireTimers() {
	timers := h.timers
	h.timers = nil
	for _, t := range timers {
		h.Send(t.msg)
	}
}

// FireTimer delivers only the i-th waiting message.
func (h *Harness) FireTimer(i int) {
	if i < 0 || i >= len(h.timers) {
		return
	}
	t := h.timers[i]
	h.timers = append(h.timers[:i:i], h.timers[i+1:]...)
	h.Send(t.msg)
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
