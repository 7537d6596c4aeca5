package navigation

import (
	"time"

	"go.uber.org/atomic"

	"github.com/skygen-app/skygen/internal/deeplink"
	"github.com/skygen-app/skygen/internal/logging/events"
)

// DefaultClearDelay is how long a pending link stays visible to observers.
const DefaultClearDelay = 100 * time.Millisecond

// Pending is the edge-trigger signal left behind by an arriving link. Token
// identifies the arrival so a late expiry cannot clear a newer link.
type Pending struct {
	Link    deeplink.Link
	Token   uint64
	Arrived time.Time
}

// Manager sequences deep-link arrivals: it selects the tab, dispatches the
// router and tracks the pending link until its expiry token comes back.
//
// A Manager has a single owner (the UI update loop) and is not safe for
// concurrent mutation.
type Manager struct {
	router     *Router
	selected   deeplink.Tab
	pending    *Pending
	seq        *atomic.Uint64
	clearDelay time.Duration
	now        func() time.Time
	obs        observers
}

// NewManager creates a manager with fresh stacks. A non-positive delay falls
// back to DefaultClearDelay.
func NewManager(clearDelay time.Duration) *Manager {
	if clearDelay <= 0 {
		clearDelay = DefaultClearDelay
	}
	return &Manager{
		router:     NewRouter(),
		selected:   deeplink.TabChat,
		seq:        atomic.NewUint64(0),
		clearDelay: clearDelay,
		now:        time.Now,
	}
}

// Router exposes the stacks for reading.
func (m *Manager) Router() *Router {
	return m.router
}

// ClearDelay is how long callers should wait before expiring a pending link.
func (m *Manager) ClearDelay() time.Duration {
	return m.clearDelay
}

// SelectedTab returns the tab currently shown.
func (m *Manager) SelectedTab() deeplink.Tab {
	return m.selected
}

// Pending returns the unconsumed link, if any.
func (m *Manager) Pending() (Pending, bool) {
	if m.pending == nil {
		return Pending{}, false
	}
	return *m.pending, true
}

// HandleURL parses raw and handles the resulting link.
func (m *Manager) HandleURL(raw string) Pending {
	events.Link.Received(raw)
	return m.HandleLink(deeplink.Parse(raw))
}

// HandleLink records link as pending, selects its tab and rewrites the stacks,
// all at arrival time. The returned token must be passed to ClearPending once
// ClearDelay has elapsed.
func (m *Manager) HandleLink(link deeplink.Link) Pending {
	p := Pending{Link: link, Token: m.seq.Inc(), Arrived: m.now()}
	if m.pending != nil {
		events.Link.Overwritten(m.pending.Token, p.Token)
	}
	m.pending = &p
	m.selected = link.Tab()
	m.router.Dispatch(link)
	events.Link.Dispatched(link.String(), m.selected.Title(), p.Token)

	snapshot := p
	m.obs.notify(Change{Kind: ChangePending, Tab: m.selected, Pending: &snapshot})
	return p
}

// ClearPending expires the pending link only if token still identifies it.
// It reports whether anything was cleared.
func (m *Manager) ClearPending(token uint64) bool {
	if m.pending == nil || m.pending.Token != token {
		current := uint64(0)
		if m.pending != nil {
			current = m.pending.Token
		}
		events.Link.Stale(token, current)
		return false
	}
	m.pending = nil
	events.Link.Cleared(token)
	m.obs.notify(Change{Kind: ChangeCleared, Tab: m.selected})
	return true
}

// SelectTab switches tabs without touching any stack.
func (m *Manager) SelectTab(tab deeplink.Tab) bool {
	if !tab.Valid() || tab == m.selected {
		return false
	}
	m.selected = tab
	events.Nav.Tab(tab.Title())
	m.obs.notify(Change{Kind: ChangeTab, Tab: tab})
	return true
}

// Push navigates deeper within the destination's own tab.
func (m *Manager) Push(d Destination) bool {
	if !m.router.Push(d) {
		return false
	}
	m.obs.notify(Change{Kind: ChangeStack, Tab: d.Tab()})
	return true
}

// Pop navigates back on a tab.
func (m *Manager) Pop(tab deeplink.Tab) (Destination, bool) {
	d, ok := m.router.Pop(tab)
	if ok {
		m.obs.notify(Change{Kind: ChangeStack, Tab: tab})
	}
	return d, ok
}

// Reset returns a tab to its root screen.
func (m *Manager) Reset(tab deeplink.Tab) {
	if m.router.Depth(tab) == 0 {
		return
	}
	m.router.Reset(tab)
	m.obs.notify(Change{Kind: ChangeStack, Tab: tab})
}

// Subscribe registers an observer and returns its id.
func (m *Manager) Subscribe(fn Observer) string {
	if fn == nil {
		return ""
	}
	return m.obs.add(fn)
}

// Unsubscribe removes an observer by id.
func (m *Manager) Unsubscribe(id string) bool {
	return m.obs.remove(id)
}
