package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/skygen-app/skygen/internal/deeplink"
	"github.com/skygen-app/skygen/internal/logging/events"
)

// linkForm collects a deep link typed by the user.
type linkForm struct {
	input textinput.Model
	title string
	help  string
}

func newLinkForm(mode cursor.Mode) *linkForm {
	ti := textinput.New()
	ti.Cursor.SetMode(mode)
	ti.Placeholder = deeplink.Scheme + "://chat/new"
	ti.CharLimit = 512
	ti.Prompt = "» "
	if styles.Prompt != nil {
		ti.PromptStyle = styles.Prompt.Copy()
	}
	ti.Focus()
	return &linkForm{
		input: ti,
		title: "Open link",
		help:  "Press Enter to open. Esc to cancel.",
	}
}

func (f *linkForm) Title() string     { return f.title }
func (f *linkForm) Help() string      { return f.help }
func (f *linkForm) Value() string     { return strings.TrimSpace(f.input.Value()) }
func (f *linkForm) InputView() string { return f.input.View() }

// Update returns the input's command and whether the form was submitted or
// cancelled. An empty submission cancels.
func (f *linkForm) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+u":
			if f.input.Value() != "" {
				f.input.SetValue("")
				f.input.CursorStart()
			}
			return nil, false, false
		}
		switch key.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			return nil, false, true
		case tea.KeyEnter:
			if f.Value() == "" {
				return nil, false, true
			}
			return nil, true, false
		}
	}
	updated, cmd := f.input.Update(msg)
	f.input = updated
	return cmd, false, false
}

func (m *Model) startLinkForm() {
	m.linkForm = newLinkForm(m.cursorMode)
	m.mode = ModeLinkForm
	m.errMsg = ""
	m.forceClearInfo()
}

func (m *Model) handleLinkForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.linkForm == nil {
		m.mode = ModeBrowse
		return false, nil
	}
	// Links, expiries and inbox events keep flowing while the form is open.
	if _, isKey := msg.(tea.KeyMsg); !isKey && m.handlerFor(msg) != nil {
		return false, nil
	}
	cmd, done, cancel := m.linkForm.Update(msg)
	if cancel {
		m.linkForm = nil
		m.mode = ModeBrowse
		return true, cmd
	}
	if done {
		url := m.linkForm.Value()
		m.linkForm = nil
		m.mode = ModeBrowse
		return true, OpenLink(url, events.SourcePrompt)
	}
	return true, cmd
}

func (m *Model) viewLinkForm() string {
	lines := []string{
		m.tabBar(),
		m.linkForm.Title(),
		"",
		m.linkForm.InputView(),
	}
	if m.errMsg != "" {
		lines = append(lines, "", styles.Error.Render(m.errMsg))
	}
	lines = append(lines, "", m.linkForm.Help())
	return strings.Join(lines, "\n")
}
