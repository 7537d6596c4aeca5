package deeplink

import "fmt"

// Tab indexes the fixed set of top-level sections.
type Tab int

const (
	TabChat Tab = iota
	TabDevice
	TabAction
	TabIntegration
	TabSettings
)

// TabCount is the number of top-level tabs.
const TabCount = 5

var tabTitles = [TabCount]string{"Chats", "Devices", "Actions", "Integrations", "Settings"}

// Tabs lists every tab in display order.
func Tabs() []Tab {
	return []Tab{TabChat, TabDevice, TabAction, TabIntegration, TabSettings}
}

// Valid reports whether t is one of the five tabs.
func (t Tab) Valid() bool {
	return t >= TabChat && t <= TabSettings
}

// Title is the label shown in the tab bar.
func (t Tab) Title() string {
	if !t.Valid() {
		return fmt.Sprintf("tab(%d)", int(t))
	}
	return tabTitles[t]
}

func (t Tab) String() string {
	return t.Title()
}

// Next returns the tab to the right, wrapping around.
func (t Tab) Next() Tab {
	return Tab((int(t) + 1) % TabCount)
}

// Prev returns the tab to the left, wrapping around.
func (t Tab) Prev() Tab {
	return Tab((int(t) + TabCount - 1) % TabCount)
}
