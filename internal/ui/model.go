package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/skygen-app/skygen/internal/backend"
	"github.com/skygen-app/skygen/internal/data/dispatcher"
	"github.com/skygen-app/skygen/internal/deeplink"
	"github.com/skygen-app/skygen/internal/logging/events"
	"github.com/skygen-app/skygen/internal/navigation"
	"github.com/skygen-app/skygen/internal/state"
	"github.com/skygen-app/skygen/internal/theme"
	"github.com/skygen-app/skygen/internal/ui/command"
	uistate "github.com/skygen-app/skygen/internal/ui/state"
)

type level = uistate.Level

type Mode int

const (
	ModeBrowse Mode = iota
	ModeLinkForm
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// scheduleFunc delivers msg after d. The program uses tea.Tick; the test
// harness records the request instead of sleeping.
type scheduleFunc func(d time.Duration, msg tea.Msg) tea.Cmd

// Options configures a Model. Nil Manager and Catalog fall back to a fresh
// manager and the seeded sample catalog.
type Options struct {
	Manager    *navigation.Manager
	Catalog    *state.Catalog
	Watcher    *backend.Watcher
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	InitialURL string
}

// Model implements the Bubble Tea model for the tabbed SkyGen client.
type Model struct {
	manager *navigation.Manager
	catalog *state.Catalog
	lists   [deeplink.TabCount]*level

	mode     Mode
	linkForm *linkForm

	errMsg         string
	infoMsg        string
	infoExpire     time.Time
	width          int
	height         int
	fixedWidth     bool
	fixedHeight    bool
	backend        *backend.Watcher
	backendLastErr string
	showFooter     bool
	verbose        bool
	initialURL     string

	filterCursor      cursor.Model
	filterCursorDirty bool
	cursorMode        cursor.Mode

	handlers     map[reflect.Type]msgHandler
	schedule     scheduleFunc
	bus          *command.Bus
	dispatcher   *dispatcher.Dispatcher
	subscription string
}

// NewModel initialises the UI with one root list per tab.
func NewModel(opts Options) *Model {
	manager := opts.Manager
	if manager == nil {
		manager = navigation.NewManager(0)
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = state.Seed()
	}
	m := &Model{
		manager:    manager,
		catalog:    catalog,
		backend:    opts.Watcher,
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		initialURL: opts.InitialURL,
		mode:       ModeBrowse,
		schedule:   tickAfter,
		bus:        command.New(),
		dispatcher: dispatcher.New(manager),
	}
	for _, tab := range deeplink.Tabs() {
		m.lists[tab] = uistate.NewLevel(tab.String(), tab.Title(), rootItems(catalog, tab))
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.subscription = manager.Subscribe(m.handleNavigationChange)
	m.registerHandlers()
	return m
}

// Manager exposes the navigation state the model renders.
func (m *Model) Manager() *navigation.Manager {
	return m.manager
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.initialURL != "" {
		cmds = append(cmds, OpenLink(m.initialURL, events.SourceFlag))
	}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handled, cmd := m.handleActiveForm(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) handleActiveForm(msg tea.Msg) (bool, tea.Cmd) {
	switch m.mode {
	case ModeLinkForm:
		return m.handleLinkForm(msg)
	default:
		return false, nil
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(openLinkMsg{}):       m.handleOpenLinkMsg,
		reflect.TypeOf(pendingExpiredMsg{}): m.handlePendingExpiredMsg,
		reflect.TypeOf(actionResultMsg{}):   m.handleActionResultMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// handleNavigationChange keeps the lists in step with the manager. An
// arriving link always lands on an unfiltered root list.
func (m *Model) handleNavigationChange(change navigation.Change) {
	switch change.Kind {
	case navigation.ChangePending:
		if l := m.listFor(change.Tab); l != nil && l.Filter != "" {
			l.SetFilter("", 0)
			m.syncViewport(l)
		}
		m.errMsg = ""
	case navigation.ChangeStack, navigation.ChangeTab:
		m.errMsg = ""
	}
}

func (m *Model) listFor(tab deeplink.Tab) *level {
	if !tab.Valid() {
		return nil
	}
	return m.lists[tab]
}

// currentLevel returns the selected tab's root list, or nil while a detail
// screen covers it.
func (m *Model) currentLevel() *level {
	if m.showingDetail() {
		return nil
	}
	return m.listFor(m.manager.SelectedTab())
}

func (m *Model) showingDetail() bool {
	return m.manager.Router().Depth(m.manager.SelectedTab()) > 0
}

func rootItems(c *state.Catalog, tab deeplink.Tab) []uistate.Item {
	switch tab {
	case deeplink.TabChat:
		items := []uistate.Item{{ID: deeplink.NewChatID, Label: "New chat", Detail: "Start a conversation"}}
		return append(items, entryItems(c.Chats)...)
	case deeplink.TabDevice:
		return entryItems(c.Devices)
	case deeplink.TabAction:
		return entryItems(c.Actions)
	case deeplink.TabIntegration:
		return entryItems(c.Integrations)
	case deeplink.TabSettings:
		dests := navigation.SettingsDestinations()
		items := make([]uistate.Item, 0, len(dests))
		for _, d := range dests {
			items = append(items, uistate.Item{ID: d.Kind.String(), Label: destinationTitle(d)})
		}
		return items
	}
	return nil
}

func entryItems(store state.CatalogStore) []uistate.Item {
	entries := store.Entries()
	items := make([]uistate.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, uistate.Item{ID: e.ID, Label: e.Title, Detail: e.Subtitle, Status: e.Status})
	}
	return items
}
