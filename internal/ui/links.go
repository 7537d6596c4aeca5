package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/skygen-app/skygen/internal/deeplink"
	"github.com/skygen-app/skygen/internal/logging/events"
	"github.com/skygen-app/skygen/internal/navigation"
	"github.com/skygen-app/skygen/internal/ui/command"
)

// openLinkMsg carries an incoming deep link into the update loop, which is
// the only place the navigation manager is mutated.
type openLinkMsg struct {
	url    string
	source events.LinkSource
}

// pendingExpiredMsg fires once the clear delay has passed for token.
type pendingExpiredMsg struct {
	token uint64
}

// OpenLink returns a command that delivers url to the model as an arriving
// deep link.
func OpenLink(url string, source events.LinkSource) tea.Cmd {
	return func() tea.Msg {
		return openLinkMsg{url: url, source: source}
	}
}

func tickAfter(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

func (m *Model) handleOpenLinkMsg(msg tea.Msg) tea.Cmd {
	open, ok := msg.(openLinkMsg)
	if !ok {
		return nil
	}
	url := strings.TrimSpace(open.url)
	if url == "" {
		return nil
	}
	events.Link.Open(url, open.source)
	return m.afterArrival(m.manager.HandleURL(url))
}

// afterArrival reports the outcome of a handled link and schedules the
// pending expiry for its token.
func (m *Model) afterArrival(p navigation.Pending) tea.Cmd {
	if p.Link.IsUnknown() {
		m.setInfo(fmt.Sprintf("Unrecognised link %q", p.Link.Raw))
	} else if m.verbose {
		m.setInfo(fmt.Sprintf("Opened %s", deeplink.Generate(p.Link)))
	} else {
		m.forceClearInfo()
	}
	if l := m.currentLevel(); l != nil {
		m.syncViewport(l)
	}
	if m.schedule == nil {
		return nil
	}
	return m.schedule(m.manager.ClearDelay(), pendingExpiredMsg{token: p.Token})
}

func (m *Model) handlePendingExpiredMsg(msg tea.Msg) tea.Cmd {
	expired, ok := msg.(pendingExpiredMsg)
	if !ok {
		return nil
	}
	m.manager.ClearPending(expired.token)
	return nil
}

// currentLink returns the canonical link for what the selected tab shows.
// Root lists without a link of their own report false.
func (m *Model) currentLink() (deeplink.Link, bool) {
	tab := m.manager.SelectedTab()
	if top, ok := m.manager.Router().Top(tab); ok {
		return top.Link()
	}
	switch tab {
	case deeplink.TabChat:
		return deeplink.Chat(deeplink.NewChatID), true
	case deeplink.TabSettings:
		return deeplink.Settings(), true
	}
	return deeplink.Link{}, false
}

func (m *Model) shareCurrent() tea.Cmd {
	link, ok := m.currentLink()
	if !ok {
		m.errMsg = fmt.Sprintf("The %s list has no link to share", m.manager.SelectedTab().Title())
		return nil
	}
	url := deeplink.Generate(link)
	return m.bus.Execute(command.Request{
		ID:    "share",
		Label: url,
		Handler: func() tea.Msg {
			events.Link.Generated(link.String(), url)
			events.Action.Share(url)
			return actionResultMsg{info: "Share link: " + url}
		},
	})
}
