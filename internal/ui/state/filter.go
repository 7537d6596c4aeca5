package state

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter replaces the filter query and places the filter cursor. Starting
// a filter remembers the list cursor; clearing it puts the cursor back.
func (l *Level) SetFilter(query string, cursor int) {
	wasActive := strings.TrimSpace(l.Filter) != ""
	active := strings.TrimSpace(query) != ""
	restore := l.LastCursor

	l.Filter = query
	l.FilterCursor = clamp(cursor, 0, utf8.RuneCountInString(query))
	if active {
		if !wasActive {
			l.LastCursor = l.Cursor
		}
		l.Cursor = 0
	}
	l.applyFilter()

	switch {
	case active:
		if idx := BestMatchIndex(l.Items, query); idx >= 0 {
			l.Cursor = idx
		}
	case wasActive:
		if restore >= 0 && restore < len(l.Items) {
			l.Cursor = restore
		} else if len(l.Items) > 0 {
			l.Cursor = len(l.Items) - 1
		}
		l.LastCursor = -1
	}
}

func (l *Level) applyFilter() {
	l.Items = FilterItems(l.Full, l.Filter)
	n := len(l.Items)
	if n == 0 {
		l.Cursor, l.ViewportOffset = 0, 0
		return
	}
	if l.Cursor < 0 || l.Cursor >= n {
		l.Cursor = n - 1
	}
	if l.ViewportOffset >= n {
		l.ViewportOffset = 0
	}
}

// FilterCursorPos returns the rune offset of the filter cursor.
func (l *Level) FilterCursorPos() int {
	return clamp(l.FilterCursor, 0, utf8.RuneCountInString(l.Filter))
}

func labelsOf(items []Item) []string {
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	return labels
}

// FilterItems keeps the items whose label fuzzy-matches query. When no label
// matches, a case-insensitive substring search over label, id and detail is
// used instead. Order is preserved.
func FilterItems(items []Item, query string) []Item {
	q := strings.TrimSpace(query)
	if q == "" {
		return CloneItems(items)
	}
	keep := make([]bool, len(items))
	matched := false
	for _, rank := range fuzzy.RankFindNormalizedFold(q, labelsOf(items)) {
		keep[rank.OriginalIndex] = true
		matched = true
	}
	if !matched {
		lower := strings.ToLower(q)
		for i, item := range items {
			keep[i] = strings.Contains(strings.ToLower(item.Label), lower) ||
				strings.Contains(strings.ToLower(item.ID), lower) ||
				strings.Contains(strings.ToLower(item.Detail), lower)
		}
	}
	out := make([]Item, 0, len(items))
	for i, item := range items {
		if keep[i] {
			out = append(out, item)
		}
	}
	return out
}

// matchTiers are tried in order; the first item satisfying a tier wins.
var matchTiers = []func(item Item, q string) bool{
	func(item Item, q string) bool { return strings.ToLower(item.Label) == q || strings.ToLower(item.ID) == q },
	func(item Item, q string) bool { return strings.HasPrefix(strings.ToLower(item.Label), q) },
	func(item Item, q string) bool { return strings.HasPrefix(strings.ToLower(item.ID), q) },
	func(item Item, q string) bool { return strings.Contains(strings.ToLower(item.ID), q) },
	func(item Item, q string) bool { return strings.Contains(strings.ToLower(item.Label), q) },
}

// BestMatchIndex picks the row the cursor should land on for query, or -1
// for an empty list.
func BestMatchIndex(items []Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0
	}
	for _, match := range matchTiers {
		for i, item := range items {
			if match(item, q) {
				return i
			}
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(q, labelsOf(items))
	if len(ranks) == 0 {
		return 0
	}
	sort.Stable(ranks)
	return ranks[0].OriginalIndex
}
