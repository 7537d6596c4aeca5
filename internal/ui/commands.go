package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/skygen-app/skygen/internal/logging/events"
)

// actionResultMsg reports the outcome of a command run through the bus.
type actionResultMsg struct {
	info string
	err  error
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(actionResultMsg)
	if !ok {
		return nil
	}
	if result.err != nil {
		m.errMsg = result.err.Error()
		m.forceClearInfo()
		events.Action.Error(result.err)
		return nil
	}
	m.errMsg = ""
	if result.info != "" {
		m.setInfo(result.info)
	} else {
		m.forceClearInfo()
	}
	events.Action.Success(result.info)
	return nil
}
