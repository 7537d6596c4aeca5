package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/skygen-app/skygen/internal/format/table"
	"github.com/skygen-app/skygen/internal/logging"
	"github.com/skygen-app/skygen/internal/navigation"
	"github.com/skygen-app/skygen/internal/state"
)

var destinationTitles = map[navigation.DestinationKind]string{
	navigation.ChatDetail:          "Chat",
	navigation.NewChat:             "New chat",
	navigation.DeviceDetail:        "Device",
	navigation.DeviceLogs:          "Logs",
	navigation.ActionDetail:        "Action",
	navigation.ActionHistory:       "History",
	navigation.IntegrationDetail:   "Integration",
	navigation.IntegrationSettings: "Integration settings",
	navigation.Profile:             "Profile",
	navigation.Notifications:       "Notifications",
	navigation.Security:            "Security",
	navigation.Privacy:             "Privacy",
	navigation.Help:                "Help",
	navigation.About:               "About",
	navigation.Legal:               "Legal",
}

var settingsText = map[navigation.DestinationKind]string{
	navigation.Profile:       "Name, email address and avatar for this account.",
	navigation.Notifications: "Choose which device and action events send notifications.",
	navigation.Security:      "Active sessions, two-factor authentication and trusted devices.",
	navigation.Privacy:       "Control which data integrations can read and how long history is kept.",
	navigation.Help:          "Guides for connecting devices and running actions. Open skygen://settings/help to link here.",
	navigation.Legal:         "Terms of service and privacy policy.",
}

func destinationTitle(d navigation.Destination) string {
	if title, ok := destinationTitles[d.Kind]; ok {
		return title
	}
	return d.Kind.String()
}

// destinationLabel names d for the breadcrumb, preferring the catalog title of
// the entry it shows.
func (m *Model) destinationLabel(d navigation.Destination) string {
	switch d.Kind {
	case navigation.ChatDetail, navigation.DeviceDetail, navigation.ActionDetail, navigation.IntegrationDetail:
		if entry, ok := m.storeFor(d.Kind).Find(d.ID); ok {
			return entry.Title
		}
		return fmt.Sprintf("%s %s", destinationTitle(d), d.ID)
	}
	return destinationTitle(d)
}

func (m *Model) storeFor(kind navigation.DestinationKind) state.CatalogStore {
	switch kind {
	case navigation.ChatDetail:
		return m.catalog.Chats
	case navigation.DeviceDetail, navigation.DeviceLogs:
		return m.catalog.Devices
	case navigation.ActionDetail, navigation.ActionHistory:
		return m.catalog.Actions
	case navigation.IntegrationDetail, navigation.IntegrationSettings:
		return m.catalog.Integrations
	}
	return nil
}

// detailLines renders the screen on top of a tab's stack. Ids that are not
// in the catalog still render, with a notice in place of the entry.
func (m *Model) detailLines(d navigation.Destination) []styledLine {
	lines := []styledLine{{text: m.destinationLabel(d), style: styles.DetailTitle}}
	switch d.Kind {
	case navigation.NewChat:
		return append(lines, m.wrapped("Type a message to start a conversation with SkyGen.", styles.DetailBody)...)
	case navigation.ActionHistory:
		return append(lines, m.actionHistoryLines()...)
	case navigation.About:
		return append(lines, m.wrapped(fmt.Sprintf("SkyGen terminal client. Session %s.", logging.SessionID()), styles.DetailBody)...)
	}
	if text, ok := settingsText[d.Kind]; ok {
		return append(lines, m.wrapped(text, styles.DetailBody)...)
	}

	store := m.storeFor(d.Kind)
	if store == nil {
		return lines
	}
	entry, ok := store.Find(d.ID)
	if !ok {
		msg := fmt.Sprintf("%s %q not found.", destinationTitle(navigation.To(detailKindOf(d.Kind), "")), d.ID)
		return append(lines, styledLine{text: msg, style: styles.DetailMissing})
	}
	switch d.Kind {
	case navigation.DeviceLogs:
		lines[0].text = "Logs for " + entry.Title
		return append(lines, m.wrapped("No log entries yet.", styles.DetailBody)...)
	case navigation.IntegrationSettings:
		lines[0].text = entry.Title + " settings"
		return append(lines, fieldLines(entry.Fields, "Scope", "Permissions")...)
	}
	lines = append(lines, m.wrapped(entry.Subtitle, styles.DetailBody)...)
	lines = append(lines, styledLine{})
	fields := entry.Fields
	if entry.Status != "" {
		fields = append([]state.Field{{Label: "Status", Value: entry.Status}}, fields...)
	}
	return append(lines, fieldLines(fields)...)
}

func detailKindOf(kind navigation.DestinationKind) navigation.DestinationKind {
	switch kind {
	case navigation.DeviceLogs:
		return navigation.DeviceDetail
	case navigation.IntegrationSettings:
		return navigation.IntegrationDetail
	}
	return kind
}

// fieldLines lays out label/value pairs in two columns. When only is given,
// fields with other labels are skipped.
func fieldLines(fields []state.Field, only ...string) []styledLine {
	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		if len(only) > 0 && !containsLabel(only, f.Label) {
			continue
		}
		rows = append(rows, []string{f.Label + ":", f.Value})
	}
	out := make([]styledLine, 0, len(rows))
	for _, row := range table.Format(rows, nil) {
		out = append(out, styledLine{text: row, style: styles.DetailLabel})
	}
	return out
}

func containsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}

func (m *Model) actionHistoryLines() []styledLine {
	entries := m.catalog.Actions.Entries()
	if len(entries) == 0 {
		return []styledLine{{text: "No actions have run yet.", style: styles.DetailBody}}
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		progress := ""
		for _, f := range e.Fields {
			if f.Label == "Progress" {
				progress = f.Value
			}
		}
		rows = append(rows, []string{e.Title, e.Subtitle, e.Status, progress})
	}
	aligned := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignLeft, table.AlignRight})
	out := make([]styledLine, 0, len(aligned))
	for _, row := range aligned {
		out = append(out, styledLine{text: row, style: styles.DetailBody})
	}
	return out
}

func (m *Model) wrapped(text string, style *lipgloss.Style) []styledLine {
	if text == "" {
		return nil
	}
	if m.width > 0 {
		text = wordwrap.String(text, m.width)
	}
	parts := strings.Split(text, "\n")
	out := make([]styledLine, 0, len(parts))
	for _, p := range parts {
		out = append(out, styledLine{text: p, style: style})
	}
	return out
}

// detailHint lists the keys available on the current detail screen.
func (m *Model) detailHint() string {
	hints := []string{"esc back", "ctrl+s share"}
	if top, ok := m.manager.Router().Top(m.manager.SelectedTab()); ok {
		for key, kind := range subscreenKeys[top.Kind] {
			hints = append([]string{fmt.Sprintf("%s %s", key, strings.ToLower(destinationTitles[kind]))}, hints...)
		}
	}
	text := strings.Join(hints, "  ")
	if styles.Footer != nil {
		return styles.Footer.Render(text)
	}
	return text
}
