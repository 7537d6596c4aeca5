package navigation

import (
	"fmt"

	"github.com/skygen-app/skygen/internal/deeplink"
)

// DestinationKind names a screen that can sit on a tab's navigation stack.
type DestinationKind int

const (
	ChatDetail DestinationKind = iota + 1
	NewChat
	DeviceDetail
	DeviceLogs
	ActionDetail
	ActionHistory
	IntegrationDetail
	IntegrationSettings
	Profile
	Notifications
	Security
	Privacy
	Help
	About
	Legal
)

type kindInfo struct {
	name  string
	tab   deeplink.Tab
	hasID bool
}

var destinationKinds = map[DestinationKind]kindInfo{
	ChatDetail:          {"chat-detail", deeplink.TabChat, true},
	NewChat:             {"new-chat", deeplink.TabChat, false},
	DeviceDetail:        {"device-detail", deeplink.TabDevice, true},
	DeviceLogs:          {"device-logs", deeplink.TabDevice, true},
	ActionDetail:        {"action-detail", deeplink.TabAction, true},
	ActionHistory:       {"action-history", deeplink.TabAction, false},
	IntegrationDetail:   {"integration-detail", deeplink.TabIntegration, true},
	IntegrationSettings: {"integration-settings", deeplink.TabIntegration, true},
	Profile:             {"profile", deeplink.TabSettings, false},
	Notifications:       {"notifications", deeplink.TabSettings, false},
	Security:            {"security", deeplink.TabSettings, false},
	Privacy:             {"privacy", deeplink.TabSettings, false},
	Help:                {"help", deeplink.TabSettings, false},
	About:               {"about", deeplink.TabSettings, false},
	Legal:               {"legal", deeplink.TabSettings, false},
}

func (k DestinationKind) String() string {
	if info, ok := destinationKinds[k]; ok {
		return info.name
	}
	return fmt.Sprintf("destination(%d)", int(k))
}

// KindByName looks a destination kind up by its String form.
func KindByName(name string) (DestinationKind, bool) {
	for kind, info := range destinationKinds {
		if info.name == name {
			return kind, true
		}
	}
	return 0, false
}

// Tab returns the tab whose stack owns destinations of this kind.
func (k DestinationKind) Tab() deeplink.Tab {
	return destinationKinds[k].tab
}

// HasID reports whether destinations of this kind are keyed by an identifier.
func (k DestinationKind) HasID() bool {
	return destinationKinds[k].hasID
}

// Destination is an immutable navigation token. The ID is opaque and is never
// checked against the catalog.
type Destination struct {
	Kind DestinationKind
	ID   string
}

// To builds a destination of the given kind.
func To(kind DestinationKind, id string) Destination {
	if !kind.HasID() {
		id = ""
	}
	return Destination{Kind: kind, ID: id}
}

// Tab returns the tab the destination belongs to.
func (d Destination) Tab() deeplink.Tab {
	return d.Kind.Tab()
}

func (d Destination) String() string {
	if d.Kind.HasID() {
		return fmt.Sprintf("%s(%s)", d.Kind, d.ID)
	}
	return d.Kind.String()
}

// Link returns the deep link that reaches this destination, if one exists.
// Destinations only reachable through in-app navigation report false.
func (d Destination) Link() (deeplink.Link, bool) {
	switch d.Kind {
	case ChatDetail:
		return deeplink.Chat(d.ID), true
	case NewChat:
		return deeplink.Chat(deeplink.NewChatID), true
	case DeviceDetail, DeviceLogs:
		return deeplink.Device(d.ID), true
	case ActionDetail:
		return deeplink.Action(d.ID), true
	case IntegrationDetail, IntegrationSettings:
		return deeplink.Integration(d.ID), true
	case Profile:
		return deeplink.Profile(), true
	case Security:
		return deeplink.Security(), true
	case Help:
		return deeplink.Help(), true
	case Notifications, Privacy, About, Legal:
		return deeplink.Settings(), true
	}
	return deeplink.Link{}, false
}

// SettingsDestinations lists the settings screens in menu order.
func SettingsDestinations() []Destination {
	return []Destination{
		To(Profile, ""),
		To(Notifications, ""),
		To(Security, ""),
		To(Privacy, ""),
		To(Help, ""),
		To(Legal, ""),
		To(About, ""),
	}
}
