package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/skygen-app/skygen/internal/logging/events"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(l *level, before int) {
	if l == nil {
		return
	}
	if before != l.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

// filterEdits maps editing keys to the change they make to a list filter
// and the trace emitted when it applies.
var filterEdits = map[string]struct {
	apply func(*level) bool
	trace func(*level)
}{
	"ctrl+u": {
		apply: func(l *level) bool {
			if l.Filter == "" {
				return false
			}
			l.SetFilter("", 0)
			return true
		},
		trace: func(l *level) { events.Filter.Cleared(l.ID) },
	},
	"ctrl+w": {
		apply: (*level).DeleteFilterWordBackward,
		trace: func(l *level) { events.Filter.WordBackspace(l.ID, l.Filter) },
	},
	"backspace": {
		apply: (*level).DeleteFilterRuneBackward,
		trace: func(l *level) { events.Filter.Backspace(l.ID, l.Filter) },
	},
	"ctrl+h": {
		apply: (*level).DeleteFilterRuneBackward,
		trace: func(l *level) { events.Filter.Backspace(l.ID, l.Filter) },
	},
}

// filterMoves only reposition the filter caret.
var filterMoves = map[string]func(*level) bool{
	"ctrl+a": (*level).MoveFilterCursorStart,
	"ctrl+e": (*level).MoveFilterCursorEnd,
	"alt+b":  (*level).MoveFilterCursorWordBackward,
	"alt+f":  (*level).MoveFilterCursorWordForward,
	"left":   (*level).MoveFilterCursorRuneBackward,
	"right":  (*level).MoveFilterCursorRuneForward,
}

// handleTextInput applies filter editing keys to the selected tab's root list.
func (m *Model) handleTextInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	current := m.currentLevel()
	if current == nil {
		return false, nil
	}
	name := msg.String()
	if edit, ok := filterEdits[name]; ok {
		return m.editFilter(current, edit.apply, edit.trace), nil
	}
	if move, ok := filterMoves[name]; ok {
		before := current.FilterCursorPos()
		if !move(current) {
			return false, nil
		}
		m.noteFilterCursorChange(current, before)
		events.Filter.Cursor(current.ID, current.FilterCursor)
		return true, nil
	}
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false, nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) || unicode.IsSpace(r) {
				return false, nil
			}
		}
		return m.appendToFilter(string(msg.Runes)), nil
	case tea.KeySpace:
		return m.appendToFilter(" "), nil
	}
	return false, nil
}

func (m *Model) appendToFilter(text string) bool {
	current := m.currentLevel()
	if current == nil || text == "" {
		return false
	}
	return m.editFilter(current,
		func(l *level) bool { return l.InsertFilterText(text) },
		func(l *level) { events.Filter.Append(l.ID, l.Filter) })
}

// editFilter runs apply against l and, when it changed something, resets the
// status messages and keeps the viewport on the cursor.
func (m *Model) editFilter(l *level, apply func(*level) bool, trace func(*level)) bool {
	before := l.FilterCursorPos()
	if !apply(l) {
		return false
	}
	m.noteFilterCursorChange(l, before)
	m.forceClearInfo()
	m.errMsg = ""
	trace(l)
	m.syncViewport(l)
	return true
}

// filterPrompt renders the filter row with its caret. On a detail screen the
// row shows key hints for that screen instead.
func (m *Model) filterPrompt() string {
	current := m.currentLevel()
	if current == nil {
		return m.detailHint()
	}
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := current.Filter
	if text == "" {
		runes := []rune("(type to filter " + current.Title + ")")
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(string(runes[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(runes[1:]))
	}
	runes := []rune(text)
	pos := current.FilterCursorPos()
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
