package deeplink

import "fmt"

// Scheme is the only URL scheme the client answers to.
const Scheme = "skygen"

// NewChatID is the chat id used when a chat link carries no id.
const NewChatID = "new"

// Kind identifies the variant held by a Link.
type Kind int

const (
	KindUnknown Kind = iota
	KindChat
	KindDevice
	KindAction
	KindIntegration
	KindSettings
	KindProfile
	KindSecurity
	KindHelp
)

var kindNames = map[Kind]string{
	KindUnknown:     "unknown",
	KindChat:        "chat",
	KindDevice:      "device",
	KindAction:      "action",
	KindIntegration: "integration",
	KindSettings:    "settings",
	KindProfile:     "profile",
	KindSecurity:    "security",
	KindHelp:        "help",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// HasID reports whether links of this kind carry an identifier.
func (k Kind) HasID() bool {
	switch k {
	case KindChat, KindDevice, KindAction, KindIntegration:
		return true
	}
	return false
}

// Link is a parsed deep link. The zero value is Unknown("").
//
// Links are plain values: they are compared with == and never mutated after
// construction. Only ID-carrying kinds populate ID and only Unknown populates Raw.
type Link struct {
	Kind Kind
	ID   string
	Raw  string
}

func Chat(id string) Link        { return Link{Kind: KindChat, ID: id} }
func Device(id string) Link      { return Link{Kind: KindDevice, ID: id} }
func Action(id string) Link      { return Link{Kind: KindAction, ID: id} }
func Integration(id string) Link { return Link{Kind: KindIntegration, ID: id} }
func Settings() Link             { return Link{Kind: KindSettings} }
func Profile() Link              { return Link{Kind: KindProfile} }
func Security() Link             { return Link{Kind: KindSecurity} }
func Help() Link                 { return Link{Kind: KindHelp} }
func Unknown(raw string) Link    { return Link{Kind: KindUnknown, Raw: raw} }

// IsUnknown reports whether the link failed to resolve to a destination.
func (l Link) IsUnknown() bool {
	return l.Kind == KindUnknown
}

func (l Link) String() string {
	switch {
	case l.Kind == KindUnknown:
		return fmt.Sprintf("unknown(%q)", l.Raw)
	case l.Kind.HasID():
		return fmt.Sprintf("%s(%s)", l.Kind, l.ID)
	default:
		return l.Kind.String()
	}
}

// Tab returns the top-level tab a link selects. Unknown links fall back to Chat.
func (l Link) Tab() Tab {
	switch l.Kind {
	case KindChat:
		return TabChat
	case KindDevice:
		return TabDevice
	case KindAction:
		return TabAction
	case KindIntegration:
		return TabIntegration
	case KindSettings, KindProfile, KindSecurity, KindHelp:
		return TabSettings
	default:
		return TabChat
	}
}
