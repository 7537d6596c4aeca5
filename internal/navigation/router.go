package navigation

import (
	"github.com/skygen-app/skygen/internal/deeplink"
	"github.com/skygen-app/skygen/internal/logging/events"
)

// Router owns one navigation stack per tab.
type Router struct {
	stacks [deeplink.TabCount]*Stack
}

// NewRouter creates a router with five empty stacks.
func NewRouter() *Router {
	r := &Router{}
	for i := range r.stacks {
		r.stacks[i] = NewStack()
	}
	return r
}

// Dispatch clears every stack and pushes the single destination the link
// resolves to. Settings, Unknown and Chat("new") push nothing.
func (r *Router) Dispatch(link deeplink.Link) {
	r.clearAll()
	dest, ok := destinationFor(link)
	pushed := ""
	if ok {
		r.stacks[dest.Tab()].Push(dest)
		pushed = dest.String()
	}
	events.Nav.Dispatch(link.String(), pushed)
}

func destinationFor(link deeplink.Link) (Destination, bool) {
	switch link.Kind {
	case deeplink.KindChat:
		if link.ID == deeplink.NewChatID {
			return Destination{}, false
		}
		return To(ChatDetail, link.ID), true
	case deeplink.KindDevice:
		return To(DeviceDetail, link.ID), true
	case deeplink.KindAction:
		return To(ActionDetail, link.ID), true
	case deeplink.KindIntegration:
		return To(IntegrationDetail, link.ID), true
	case deeplink.KindProfile:
		return To(Profile, ""), true
	case deeplink.KindSecurity:
		return To(Security, ""), true
	case deeplink.KindHelp:
		return To(Help, ""), true
	}
	return Destination{}, false
}

func (r *Router) clearAll() {
	for _, s := range r.stacks {
		s.Clear()
	}
}

// Push appends a destination to its own tab's stack; other tabs are untouched.
func (r *Router) Push(d Destination) bool {
	tab := d.Tab()
	if !tab.Valid() || d.Kind == 0 {
		return false
	}
	r.stacks[tab].Push(d)
	events.Nav.Push(tab.Title(), d.String())
	return true
}

// Pop removes the top destination of a tab.
func (r *Router) Pop(tab deeplink.Tab) (Destination, bool) {
	if !tab.Valid() {
		return Destination{}, false
	}
	d, ok := r.stacks[tab].Pop()
	if ok {
		events.Nav.Pop(tab.Title(), d.String())
	}
	return d, ok
}

// Reset empties a single tab's stack.
func (r *Router) Reset(tab deeplink.Tab) {
	if !tab.Valid() {
		return
	}
	r.stacks[tab].Clear()
	events.Nav.Reset(tab.Title())
}

// Top returns the destination currently shown on a tab.
func (r *Router) Top(tab deeplink.Tab) (Destination, bool) {
	if !tab.Valid() {
		return Destination{}, false
	}
	return r.stacks[tab].Peek()
}

// Entries returns a copy of a tab's stack, bottom first.
func (r *Router) Entries(tab deeplink.Tab) []Destination {
	if !tab.Valid() {
		return nil
	}
	return r.stacks[tab].Entries()
}

// Depth returns the number of destinations on a tab's stack.
func (r *Router) Depth(tab deeplink.Tab) int {
	if !tab.Valid() {
		return 0
	}
	return r.stacks[tab].Len()
}

// Empty reports whether every stack is empty.
func (r *Router) Empty() bool {
	for _, s := range r.stacks {
		if !s.IsEmpty() {
			return false
		}
	}
	return true
}
