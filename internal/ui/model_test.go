package ui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/skygen-app/skygen/internal/backend"
	"github.com/skygen-app/skygen/internal/deeplink"
	"github.com/skygen-app/skygen/internal/logging"
	"github.com/skygen-app/skygen/internal/logging/events"
	"github.com/skygen-app/skygen/internal/navigation"
)

func newTestHarness() *Harness {
	return NewHarness(NewModel(Options{Width: 100, Height: 30}))
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func topOf(m *Model) (navigation.Destination, bool) {
	return m.Manager().Router().Top(m.Manager().SelectedTab())
}

func TestOpenLinkSelectsTabAndPushesImmediately(t *testing.T) {
	h := newTestHarness()
	h.Send(openLinkMsg{url: "skygen://device/device-2", source: events.SourceInbox})

	m := h.Model()
	if m.Manager().SelectedTab() != deeplink.TabDevice {
		t.Fatalf("expected device tab, got %s", m.Manager().SelectedTab())
	}
	top, ok := topOf(m)
	if !ok || top != navigation.To(navigation.DeviceDetail, "device-2") {
		t.Fatalf("expected device detail pushed, got %v", top)
	}
	if _, ok := m.Manager().Pending(); !ok {
		t.Fatalf("expected pending link before the delay elapses")
	}
	if h.Pending() != 1 || h.Delays()[0] != navigation.DefaultClearDelay {
		t.Fatalf("expected one expiry after %s, got %v", navigation.DefaultClearDelay, h.Delays())
	}
	view := h.View()
	if !strings.Contains(view, "Devices › Ubuntu Server") {
		t.Fatalf("expected breadcrumb in view, got:\n%s", view)
	}
	if !strings.Contains(view, "192.168.1.101") {
		t.Fatalf("expected device fields in view, got:\n%s", view)
	}
	if !strings.Contains(view, "→ skygen://device/device-2") {
		t.Fatalf("expected pending badge in view, got:\n%s", view)
	}

	h.FireTimers()
	if _, ok := m.Manager().Pending(); ok {
		t.Fatalf("expected pending link cleared after expiry")
	}
	if top, _ := topOf(m); top.ID != "device-2" {
		t.Fatalf("expected detail to stay open after expiry, got %v", top)
	}
	if strings.Contains(h.View(), "→ skygen://") {
		t.Fatalf("expected pending badge gone after expiry")
	}
}

func TestStaleExpiryDoesNotClearNewerLink(t *testing.T) {
	h := newTestHarness()
	h.Send(openLinkMsg{url: "skygen://chat/chat-1", source: events.SourceFlag})
	h.Send(openLinkMsg{url: "skygen://settings/help", source: events.SourceFlag})
	if h.Pending() != 2 {
		t.Fatalf("expected two expiries, got %d", h.Pending())
	}

	h.FireTimer(0)
	pending, ok := h.Model().Manager().Pending()
	if !ok || pending.Link != deeplink.Help() {
		t.Fatalf("expected help link still pending, got %#v", pending)
	}
	h.FireTimer(0)
	if _, ok := h.Model().Manager().Pending(); ok {
		t.Fatalf("expected newest expiry to clear the link")
	}
	if top, _ := topOf(h.Model()); top.Kind != navigation.Help {
		t.Fatalf("expected help screen, got %v", top)
	}
}

func TestUnknownLinkReportsAndLandsOnChat(t *testing.T) {
	h := newTestHarness()
	h.Send(openLinkMsg{url: "skygen://device/device-1", source: events.SourceFlag})
	h.Send(openLinkMsg{url: "https://example.com", source: events.SourceFlag})

	m := h.Model()
	if m.Manager().SelectedTab() != deeplink.TabChat {
		t.Fatalf("expected chat tab, got %s", m.Manager().SelectedTab())
	}
	if !m.Manager().Router().Empty() {
		t.Fatalf("expected stacks cleared for unknown link")
	}
	if !strings.Contains(m.currentInfo(), "Unrecognised link") {
		t.Fatalf("expected unrecognised notice, got %q", m.currentInfo())
	}
}

func TestBlankLinkIsIgnored(t *testing.T) {
	h := newTestHarness()
	h.Send(openLinkMsg{url: "   ", source: events.SourcePrompt})
	if _, ok := h.Model().Manager().Pending(); ok {
		t.Fatalf("expected blank url ignored")
	}
	if h.Pending() != 0 {
		t.Fatalf("expected no expiry scheduled")
	}
}

func TestLinkFormOpensTypedLink(t *testing.T) {
	h := newTestHarness()
	h.Send(key(tea.KeyCtrlO))
	m := h.Model()
	if m.mode != ModeLinkForm {
		t.Fatalf("expected link form mode")
	}
	if !strings.Contains(h.View(), "Open link") {
		t.Fatalf("expected form title in view, got:\n%s", h.View())
	}
	h.Send(runes("skygen://settings/profile"))
	h.Send(key(tea.KeyEnter))

	if m.mode != ModeBrowse {
		t.Fatalf("expected browse mode after submit")
	}
	if m.Manager().SelectedTab() != deeplink.TabSettings {
		t.Fatalf("expected settings tab, got %s", m.Manager().SelectedTab())
	}
	if top, ok := topOf(m); !ok || top.Kind != navigation.Profile {
		t.Fatalf("expected profile pushed, got %v", top)
	}
}

func TestLinkFormCancelLeavesStateAlone(t *testing.T) {
	h := newTestHarness()
	h.Send(key(tea.KeyCtrlO))
	h.Send(runes("skygen://device/device-1"))
	h.Send(key(tea.KeyEsc))
	m := h.Model()
	if m.mode != ModeBrowse || m.linkForm != nil {
		t.Fatalf("expected form closed")
	}
	if !m.Manager().Router().Empty() {
		t.Fatalf("expected no navigation after cancel")
	}

	h.Send(key(tea.KeyCtrlO))
	h.Send(key(tea.KeyEnter))
	if m.mode != ModeBrowse {
		t.Fatalf("expected empty submission to cancel")
	}
}

func TestLinkFormLetsArrivalsThrough(t *testing.T) {
	h := newTestHarness()
	h.Send(key(tea.KeyCtrlO))
	h.Send(openLinkMsg{url: "skygen://action/action-2", source: events.SourceInbox})
	m := h.Model()
	if m.mode != ModeLinkForm {
		t.Fatalf("expected form to stay open")
	}
	if m.Manager().SelectedTab() != deeplink.TabAction {
		t.Fatalf("expected arrival handled while form open")
	}
}

func TestEnterOpensDetailAndSubscreens(t *testing.T) {
	h := newTestHarness()
	h.Send(key(tea.KeyTab))
	m := h.Model()
	if m.Manager().SelectedTab() != deeplink.TabDevice {
		t.Fatalf("expected tab to switch to devices")
	}
	h.Send(key(tea.KeyDown))
	h.Send(key(tea.KeyEnter))
	if top, ok := topOf(m); !ok || top != navigation.To(navigation.DeviceDetail, "device-2") {
		t.Fatalf("expected second device opened, got %v", top)
	}
	if !strings.Contains(h.View(), "ctrl+l logs") {
		t.Fatalf("expected logs hint, got:\n%s", h.View())
	}

	h.Send(key(tea.KeyCtrlL))
	if top, _ := topOf(m); top != navigation.To(navigation.DeviceLogs, "device-2") {
		t.Fatalf("expected device logs pushed, got %v", top)
	}
	if !strings.Contains(h.View(), "Logs for Ubuntu Server") {
		t.Fatalf("expected logs title, got:\n%s", h.View())
	}
	h.Send(key(tea.KeyCtrlL))
	if m.Manager().Router().Depth(deeplink.TabDevice) != 2 {
		t.Fatalf("expected ctrl+l on logs to do nothing")
	}

	h.Send(key(tea.KeyEsc))
	h.Send(key(tea.KeyEsc))
	if m.Manager().Router().Depth(deeplink.TabDevice) != 0 {
		t.Fatalf("expected device stack emptied by esc")
	}
	if l := m.currentLevel(); l == nil || l.Cursor != 1 {
		t.Fatalf("expected list cursor kept on opened device")
	}
}

func TestActionHistoryListsEveryAction(t *testing.T) {
	h := newTestHarness()
	h.Send(openLinkMsg{url: "skygen://action/action-1", source: events.SourceFlag})
	h.Send(key(tea.KeyCtrlR))
	top, _ := topOf(h.Model())
	if top.Kind != navigation.ActionHistory {
		t.Fatalf("expected history pushed, got %v", top)
	}
	view := h.View()
	for _, title := range []string{"System update", "Backup", "Security scan", "Temp file cleanup"} {
		if !strings.Contains(view, title) {
			t.Fatalf("expected %q in history, got:\n%s", title, view)
		}
	}
}

func TestBackspaceOnActionDetailDoesNotOpenHistory(t *testing.T) {
	h := newTestHarness()
	h.Send(openLinkMsg{url: "skygen://action/action-1", source: events.SourceFlag})
	h.Send(key(tea.KeyCtrlH))
	h.Send(key(tea.KeyBackspace))
	if top, _ := topOf(h.Model()); top != navigation.To(navigation.ActionDetail, "action-1") {
		t.Fatalf("expected action detail to stay on top, got %v", top)
	}
	if !strings.Contains(h.View(), "ctrl+r history") {
		t.Fatalf("expected history hint, got:\n%s", h.View())
	}
}

func TestEscQuitsOnlyWhenEveryStackIsEmpty(t *testing.T) {
	m := NewModel(Options{})
	NewHarness(m)
	_, cmd := m.Update(key(tea.KeyEsc))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}

	h := newTestHarness()
	h.Send(openLinkMsg{url: "skygen://device/device-1", source: events.SourceFlag})
	h.Send(key(tea.KeyShiftTab))
	mdl, cmd := h.Model().Update(key(tea.KeyEsc))
	if cmd != nil {
		t.Fatalf("expected no quit while the device stack is open")
	}
	if !strings.Contains(mdl.(*Model).currentInfo(), "Other tabs") {
		t.Fatalf("expected notice about open tabs, got %q", mdl.(*Model).currentInfo())
	}
}

func TestShareReportsCanonicalLink(t *testing.T) {
	h := newTestHarness()
	h.Send(openLinkMsg{url: "skygen://integration/integration-3", source: events.SourceFlag})
	h.Send(key(tea.KeyCtrlT))
	h.Send(key(tea.KeyCtrlS))
	info := h.Model().currentInfo()
	if info != "Share link: skygen://integration/integration-3" {
		t.Fatalf("unexpected share info %q", info)
	}

	h.Send(key(tea.KeyEsc))
	h.Send(key(tea.KeyEsc))
	h.Send(key(tea.KeyCtrlS))
	if !strings.Contains(h.Model().errMsg, "Integrations list has no link") {
		t.Fatalf("expected share error on integrations root, got %q", h.Model().errMsg)
	}

	h.Send(key(tea.KeyTab))
	h.Send(key(tea.KeyCtrlS))
	if info := h.Model().currentInfo(); info != "Share link: skygen://settings" {
		t.Fatalf("expected settings root link, got %q", info)
	}
}

func TestFilterNarrowsListAndArrivalResetsIt(t *testing.T) {
	h := newTestHarness()
	h.Send(runes("backup"))
	m := h.Model()
	l := m.currentLevel()
	if l == nil || len(l.Items) != 1 || l.Items[0].ID != "chat-3" {
		t.Fatalf("expected only the backup chat, got %#v", l.Items)
	}
	view := h.View()
	if strings.Contains(view, "Log analysis") {
		t.Fatalf("expected filtered chats hidden, got:\n%s", view)
	}

	h.Send(openLinkMsg{url: "skygen://chat/chat-1", source: events.SourceInbox})
	if l.Filter != "" || len(l.Items) != len(l.Full) {
		t.Fatalf("expected arrival to reset the filter, got %q", l.Filter)
	}
}

func TestSettingsItemsOpenTheirScreens(t *testing.T) {
	h := newTestHarness()
	h.Send(key(tea.KeyShiftTab))
	m := h.Model()
	if m.Manager().SelectedTab() != deeplink.TabSettings {
		t.Fatalf("expected wraparound to settings")
	}
	h.Send(key(tea.KeyEnd))
	h.Send(key(tea.KeyEnter))
	top, ok := topOf(m)
	if !ok || top.Kind != navigation.About {
		t.Fatalf("expected about screen, got %v", top)
	}
	link, ok := m.currentLink()
	if !ok || link != deeplink.Settings() {
		t.Fatalf("expected about to share the settings root, got %v", link)
	}
	if !strings.Contains(h.View(), "SkyGen terminal client") {
		t.Fatalf("expected about text, got:\n%s", h.View())
	}
}

func TestMissingEntryRendersNotice(t *testing.T) {
	h := newTestHarness()
	h.Send(openLinkMsg{url: "skygen://device/nope", source: events.SourceFlag})
	view := h.View()
	if !strings.Contains(view, `Device "nope" not found.`) {
		t.Fatalf("expected missing notice, got:\n%s", view)
	}
	if !strings.Contains(view, "Devices › Device nope") {
		t.Fatalf("expected breadcrumb to fall back to the id, got:\n%s", view)
	}
}

func TestBackendEventsRouteThroughDispatcher(t *testing.T) {
	logging.Configure(filepath.Join(t.TempDir(), "skygen.log"))
	defer logging.Configure("")

	h := newTestHarness()
	h.Send(backendEventMsg{event: backend.Event{URL: "skygen://integration/integration-1"}})
	m := h.Model()
	if m.Manager().SelectedTab() != deeplink.TabIntegration {
		t.Fatalf("expected integration tab, got %s", m.Manager().SelectedTab())
	}
	if h.Pending() != 1 {
		t.Fatalf("expected expiry scheduled for inbox link")
	}

	h.Send(backendEventMsg{event: backend.Event{Err: errors.New("permission denied")}})
	if !strings.Contains(h.View(), "Inbox: permission denied") {
		t.Fatalf("expected inbox error on status line, got:\n%s", h.View())
	}
	h.Send(backendEventMsg{event: backend.Event{URL: "skygen://chat/chat-2"}})
	if m.backendLastErr != "" {
		t.Fatalf("expected error cleared by next event")
	}
}

func TestViewShowsTabsAndFooter(t *testing.T) {
	m := NewModel(Options{Width: 120, Height: 30, ShowFooter: true})
	h := NewHarness(m)
	view := h.View()
	for _, tab := range deeplink.Tabs() {
		if !strings.Contains(view, tab.Title()) {
			t.Fatalf("expected %q in tab bar, got:\n%s", tab.Title(), view)
		}
	}
	if !strings.Contains(view, "ctrl+o open link") {
		t.Fatalf("expected footer help, got:\n%s", view)
	}
	if !strings.Contains(view, "New chat") || !strings.Contains(view, "pinned") {
		t.Fatalf("expected chat list with status column, got:\n%s", view)
	}
}

func TestWindowSizeRespectsFixedDimensions(t *testing.T) {
	m := NewModel(Options{Width: 40})
	h := NewHarness(m)
	h.Send(tea.WindowSizeMsg{Width: 90, Height: 12})
	if m.width != 40 || m.height != 12 {
		t.Fatalf("expected width 40 and height 12, got %d and %d", m.width, m.height)
	}
	for _, line := range strings.Split(h.View(), "\n") {
		if w := len([]rune(line)); w > 40 {
			t.Fatalf("expected lines within 40 columns, got %d: %q", w, line)
		}
	}
}
