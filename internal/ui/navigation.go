package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/skygen-app/skygen/internal/deeplink"
	"github.com/skygen-app/skygen/internal/logging/events"
	"github.com/skygen-app/skygen/internal/navigation"
	uistate "github.com/skygen-app/skygen/internal/ui/state"
)

func (m *Model) switchTab(to deeplink.Tab) {
	from := m.manager.SelectedTab()
	if !m.manager.SelectTab(to) {
		return
	}
	events.UI.TabSwitch(from.Title(), to.Title())
	m.forceClearInfo()
	if l := m.currentLevel(); l != nil {
		m.syncViewport(l)
	}
}

func (m *Model) handleEscapeKey() tea.Cmd {
	tab := m.manager.SelectedTab()
	if _, ok := m.manager.Pop(tab); ok {
		events.UI.Back(tab.Title(), m.manager.Router().Depth(tab))
		m.forceClearInfo()
		return nil
	}
	if current := m.currentLevel(); current != nil && current.Filter != "" {
		before := current.FilterCursorPos()
		current.SetFilter("", 0)
		m.noteFilterCursorChange(current, before)
		events.Filter.Cleared(current.ID)
		m.syncViewport(current)
		return nil
	}
	if m.manager.Router().Empty() {
		return tea.Quit
	}
	m.setInfo("Other tabs still have open screens; ctrl+c quits.")
	return nil
}

func (m *Model) handleEnterKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	item, ok := current.Current()
	if !ok {
		return nil
	}
	tab := m.manager.SelectedTab()
	events.UI.ListEnter(tab.Title(), item.ID, item.Label, current.Filter)
	dest, ok := destinationForItem(tab, item)
	if !ok {
		m.errMsg = fmt.Sprintf("Nothing to open for %s", item.Label)
		return nil
	}
	beforeCursor := current.FilterCursorPos()
	current.SetFilter("", 0)
	m.noteFilterCursorChange(current, beforeCursor)
	if idx := current.IndexOf(item.ID); idx >= 0 {
		current.Cursor = idx
	}
	m.forceClearInfo()
	m.manager.Push(dest)
	return nil
}

func destinationForItem(tab deeplink.Tab, item uistate.Item) (navigation.Destination, bool) {
	switch tab {
	case deeplink.TabChat:
		if item.ID == deeplink.NewChatID {
			return navigation.To(navigation.NewChat, ""), true
		}
		return navigation.To(navigation.ChatDetail, item.ID), true
	case deeplink.TabDevice:
		return navigation.To(navigation.DeviceDetail, item.ID), true
	case deeplink.TabAction:
		return navigation.To(navigation.ActionDetail, item.ID), true
	case deeplink.TabIntegration:
		return navigation.To(navigation.IntegrationDetail, item.ID), true
	case deeplink.TabSettings:
		if kind, ok := navigation.KindByName(item.ID); ok {
			return navigation.To(kind, ""), true
		}
	}
	return navigation.Destination{}, false
}

// subscreenKeys maps a detail screen and key to the screen it opens.
var subscreenKeys = map[navigation.DestinationKind]map[string]navigation.DestinationKind{
	navigation.DeviceDetail:      {"ctrl+l": navigation.DeviceLogs},
	navigation.ActionDetail:      {"ctrl+r": navigation.ActionHistory},
	navigation.IntegrationDetail: {"ctrl+t": navigation.IntegrationSettings},
}

func (m *Model) pushSubscreen(key string) bool {
	top, ok := m.manager.Router().Top(m.manager.SelectedTab())
	if !ok {
		return false
	}
	next, ok := subscreenKeys[top.Kind][key]
	if !ok {
		return false
	}
	m.forceClearInfo()
	return m.manager.Push(navigation.To(next, top.ID))
}

func (m *Model) moveCursorUp() {
	if current := m.currentLevel(); current != nil {
		if n := len(current.Items); n > 0 {
			if current.Cursor > 0 {
				current.Cursor--
			} else {
				current.Cursor = n - 1
			}
			events.UI.ListCursor(current.ID, current.Cursor)
			m.syncViewport(current)
		}
	}
}

func (m *Model) moveCursorDown() {
	if current := m.currentLevel(); current != nil {
		if n := len(current.Items); n > 0 {
			if current.Cursor < n-1 {
				current.Cursor++
			} else {
				current.Cursor = 0
			}
			events.UI.ListCursor(current.ID, current.Cursor)
			m.syncViewport(current)
		}
	}
}

func (m *Model) moveCursorPageUp() {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursorPageUp(m.maxVisibleItems()) {
			events.UI.ListCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorPageDown() {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursorPageDown(m.maxVisibleItems()) {
			events.UI.ListCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorHome() {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursorHome() {
			events.UI.ListCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorEnd() {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursorEnd() {
			events.UI.ListCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.mode != ModeBrowse {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "tab":
		m.switchTab(m.manager.SelectedTab().Next())
		return nil
	case "shift+tab":
		m.switchTab(m.manager.SelectedTab().Prev())
		return nil
	case "esc":
		return m.handleEscapeKey()
	case "ctrl+o":
		m.startLinkForm()
		return nil
	case "ctrl+s":
		return m.shareCurrent()
	case "ctrl+l", "ctrl+r", "ctrl+t":
		if m.pushSubscreen(keyMsg.String()) {
			return nil
		}
	}
	if m.showingDetail() {
		return nil
	}
	if handled, cmd := m.handleTextInput(keyMsg); handled {
		return cmd
	}
	switch keyMsg.String() {
	case "enter":
		return m.handleEnterKey()
	case "up":
		m.moveCursorUp()
	case "down":
		m.moveCursorDown()
	case "pgup":
		m.moveCursorPageUp()
	case "pgdown":
		m.moveCursorPageDown()
	case "home":
		m.moveCursorHome()
	case "end":
		m.moveCursorEnd()
	}
	return nil
}
