package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/skygen-app/skygen/internal/backend"
	"github.com/skygen-app/skygen/internal/deeplink"
	"github.com/skygen-app/skygen/internal/logging/events"
	"github.com/skygen-app/skygen/internal/navigation"
	"github.com/skygen-app/skygen/internal/state"
	"github.com/skygen-app/skygen/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
	InitialURL   string
	Inbox        string
	ClearDelay   time.Duration
	PollInterval time.Duration
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) (err error) {
	defer func() { events.App.Stop(err) }()
	manager := navigation.NewManager(cfg.ClearDelay)
	var watcher *backend.Watcher
	if cfg.Inbox != "" {
		watcher = backend.NewWatcher(cfg.Inbox, cfg.PollInterval)
		defer watcher.Stop()
	}
	model := ui.NewModel(ui.Options{
		Manager:    manager,
		Catalog:    state.Seed(),
		Watcher:    watcher,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		InitialURL: cfg.InitialURL,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// Send appends url to the inbox so a running client opens it.
func Send(cfg Config, url string) error {
	if err := backend.Append(cfg.Inbox, url); err != nil {
		return fmt.Errorf("send link: %w", err)
	}
	events.App.Send(cfg.Inbox, url)
	return nil
}

// Report is the routing outcome of a single link.
type Report struct {
	Input  string              `json:"input"`
	Link   string              `json:"link"`
	Kind   string              `json:"kind"`
	ID     string              `json:"id,omitempty"`
	URL    string              `json:"url"`
	Tab    string              `json:"tab"`
	Token  uint64              `json:"token"`
	Stacks map[string][]string `json:"stacks"`
}

// BuildReport routes raw through a fresh manager and describes the result.
func BuildReport(cfg Config, raw string) Report {
	manager := navigation.NewManager(cfg.ClearDelay)
	p := manager.HandleURL(raw)
	stacks := make(map[string][]string, deeplink.TabCount)
	for _, tab := range deeplink.Tabs() {
		entries := manager.Router().Entries(tab)
		names := make([]string, 0, len(entries))
		for _, d := range entries {
			names = append(names, d.String())
		}
		stacks[tab.Title()] = names
	}
	return Report{
		Input:  raw,
		Link:   p.Link.String(),
		Kind:   p.Link.Kind.String(),
		ID:     p.Link.ID,
		URL:    deeplink.Generate(p.Link),
		Tab:    manager.SelectedTab().Title(),
		Token:  p.Token,
		Stacks: stacks,
	}
}

// Resolve writes the routing report for raw as indented JSON.
func Resolve(w io.Writer, cfg Config, raw string) error {
	events.App.Resolve(raw)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(BuildReport(cfg, raw)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
