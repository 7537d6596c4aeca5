package state

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// setCursor places the cursor on idx, clamped to the visible items, and
// reports whether it moved.
func (l *Level) setCursor(idx int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = clamp(idx, 0, len(l.Items)-1)
	return l.Cursor != old
}

// MoveCursorHome moves the cursor to the first item.
func (l *Level) MoveCursorHome() bool {
	return l.setCursor(0)
}

// MoveCursorEnd moves the cursor to the last item.
func (l *Level) MoveCursorEnd() bool {
	return l.setCursor(len(l.Items) - 1)
}

// MoveCursorPageUp moves the cursor up by one page of maxVisible rows.
func (l *Level) MoveCursorPageUp(maxVisible int) bool {
	return l.setCursor(max(l.Cursor, 0) - l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by one page of maxVisible rows.
func (l *Level) MoveCursorPageDown(maxVisible int) bool {
	return l.setCursor(max(l.Cursor, 0) + l.pageSize(maxVisible))
}

// pageSize is maxVisible, or the whole list when everything fits.
func (l *Level) pageSize(maxVisible int) int {
	if maxVisible <= 0 || maxVisible > len(l.Items) {
		return len(l.Items)
	}
	return maxVisible
}

// EnsureCursorVisible scrolls the viewport so the cursor row is on screen.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	n := len(l.Items)
	if n == 0 {
		l.Cursor, l.ViewportOffset = 0, 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, n-1)
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := max(n-maxVisible, 0)
	offset := clamp(l.ViewportOffset, 0, maxOffset)
	if l.Cursor < offset {
		offset = l.Cursor
	}
	if l.Cursor >= offset+maxVisible {
		offset = clamp(l.Cursor-maxVisible+1, 0, maxOffset)
	}
	l.ViewportOffset = offset
}
