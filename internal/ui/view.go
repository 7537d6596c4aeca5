package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/skygen-app/skygen/internal/deeplink"
	"github.com/skygen-app/skygen/internal/format/table"
)

const (
	breadcrumbSeparator = " › "
	footerHelp          = "tab switch  enter open  esc back  ctrl+o open link  ctrl+s share  ctrl+c quit"
	infoLifetime        = 5 * time.Second
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.mode == ModeLinkForm && m.linkForm != nil {
		return m.viewLinkForm()
	}
	tab := m.manager.SelectedTab()
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.tabBar(), raw: true})
	lines = append(lines, styledLine{text: m.breadcrumb(), style: styles.Breadcrumb})
	if top, ok := m.manager.Router().Top(tab); ok {
		lines = append(lines, m.detailLines(top)...)
	} else if current := m.currentLevel(); current != nil {
		lines = append(lines, m.listLines(current)...)
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: footerHelp, style: styles.Footer})
	}
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	bottomLines := []styledLine{
		m.statusLine(),
		{text: m.filterPrompt(), raw: true},
	}
	bottomLines = applyWidth(bottomLines, m.width)
	lines = append(lines, bottomLines...)
	return renderLines(lines)
}

func (m *Model) tabBar() string {
	selected := m.manager.SelectedTab()
	parts := make([]string, 0, deeplink.TabCount)
	for _, tab := range deeplink.Tabs() {
		style := styles.Tab
		if tab == selected {
			style = styles.ActiveTab
		}
		title := tab.Title()
		if depth := m.manager.Router().Depth(tab); depth > 0 {
			title = fmt.Sprintf("%s %d", title, depth)
		}
		if style != nil {
			title = style.Render(title)
		}
		parts = append(parts, title)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) breadcrumb() string {
	tab := m.manager.SelectedTab()
	segments := []string{tab.Title()}
	for _, d := range m.manager.Router().Entries(tab) {
		segments = append(segments, m.destinationLabel(d))
	}
	return strings.Join(segments, breadcrumbSeparator)
}

func (m *Model) statusLine() styledLine {
	if m.errMsg != "" {
		return styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	if m.backendLastErr != "" {
		return styledLine{text: fmt.Sprintf("Inbox: %s", m.backendLastErr), style: styles.Error}
	}
	if p, ok := m.manager.Pending(); ok {
		badge := "→ " + deeplink.Generate(p.Link)
		if styles.Pending != nil {
			badge = styles.Pending.Render(badge)
		}
		return styledLine{text: badge, raw: true}
	}
	return styledLine{}
}

func (m *Model) listLines(current *level) []styledLine {
	m.syncViewport(current)
	if len(current.Items) == 0 {
		msg := "(no entries)"
		if current.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", current.Filter)
		}
		return []styledLine{{text: msg, style: styles.Info}}
	}
	start := 0
	displayItems := current.Items
	if maxItems := m.maxVisibleItems(); maxItems > 0 && len(displayItems) > maxItems {
		start = current.ViewportOffset
		if start < 0 {
			start = 0
		}
		if start+maxItems > len(displayItems) {
			start = len(displayItems) - maxItems
			if start < 0 {
				start = 0
			}
			current.ViewportOffset = start
		}
		displayItems = displayItems[start : start+maxItems]
	}
	rows := make([][]string, len(displayItems))
	for i, item := range displayItems {
		rows[i] = []string{item.Label, item.Status}
	}
	aligned := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight})
	lines := make([]styledLine, 0, len(aligned))
	for i, text := range aligned {
		lines = append(lines, m.buildItemLine(strings.TrimRight(text, " "), start+i, current, m.width))
	}
	return lines
}

// buildItemLine constructs a single styledLine for a list item. When width
// is positive the text is padded so the selected row's background spans it.
func (m *Model) buildItemLine(label string, idx int, current *level, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if idx == current.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := indicator + " " + label
	if width > 0 {
		if pad := width - ansi.StringWidth(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	if current := m.currentLevel(); current != nil {
		m.syncViewport(current)
	}
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 4 // tab bar, breadcrumb, status, prompt
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoLifetime)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return string([]rune(text)[:1])
	}
	return ansi.Truncate(text, width, "…")
}
