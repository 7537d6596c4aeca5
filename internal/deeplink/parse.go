package deeplink

import (
	"net/url"
	"strings"
)

// Parse resolves a raw URL string into a Link. It never fails: anything it does
// not recognise comes back as Unknown carrying the original string.
func Parse(raw string) Link {
	// url.Parse lowercases the scheme; the gate is an exact match on the input.
	if !strings.HasPrefix(raw, Scheme+":") {
		return Unknown(raw)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return Unknown(raw)
	}
	segments := pathSegments(u)
	first := ""
	if len(segments) > 0 {
		first = segments[0]
	}

	// Any port in the authority is ignored.
	switch u.Hostname() {
	case "chat":
		if first == "" {
			return Chat(NewChatID)
		}
		return Chat(first)
	case "device":
		if first == "" {
			return Unknown(raw)
		}
		return Device(first)
	case "action":
		if first == "" {
			return Unknown(raw)
		}
		return Action(first)
	case "integration":
		if first == "" {
			return Unknown(raw)
		}
		return Integration(first)
	case "settings":
		switch first {
		case "profile":
			return Profile()
		case "security":
			return Security()
		case "help":
			return Help()
		default:
			return Settings()
		}
	}
	return Unknown(raw)
}

// pathSegments splits the escaped path so an encoded slash stays inside its
// segment, then decodes each segment on its own.
func pathSegments(u *url.URL) []string {
	escaped := u.EscapedPath()
	if escaped == "" {
		return nil
	}
	parts := strings.Split(escaped, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		if decoded, err := url.PathUnescape(part); err == nil {
			part = decoded
		}
		if part == "" {
			continue
		}
		segments = append(segments, part)
	}
	return segments
}

// Generate produces the canonical URL for a link. Unknown links return their
// stored raw string; Chat("new") is spelled out as skygen://chat/new.
func Generate(l Link) string {
	base := Scheme + "://"
	switch l.Kind {
	case KindChat:
		return base + "chat/" + url.PathEscape(l.ID)
	case KindDevice:
		return base + "device/" + url.PathEscape(l.ID)
	case KindAction:
		return base + "action/" + url.PathEscape(l.ID)
	case KindIntegration:
		return base + "integration/" + url.PathEscape(l.ID)
	case KindSettings:
		return base + "settings"
	case KindProfile:
		return base + "settings/profile"
	case KindSecurity:
		return base + "settings/security"
	case KindHelp:
		return base + "settings/help"
	default:
		return l.Raw
	}
}
