package state

import "unicode"

func wordStart(r []rune, pos int) int {
	for pos > 0 && unicode.IsSpace(r[pos-1]) {
		pos--
	}
	for pos > 0 && !unicode.IsSpace(r[pos-1]) {
		pos--
	}
	return pos
}

func wordEnd(r []rune, pos int) int {
	for pos < len(r) && !unicode.IsSpace(r[pos]) {
		pos++
	}
	for pos < len(r) && unicode.IsSpace(r[pos]) {
		pos++
	}
	return pos
}

// splice replaces the filter runes in [from, to) with insert and leaves the
// cursor just after the inserted text.
func (l *Level) splice(from, to int, insert []rune) {
	r := []rune(l.Filter)
	out := make([]rune, 0, len(r)-(to-from)+len(insert))
	out = append(out, r[:from]...)
	out = append(out, insert...)
	out = append(out, r[to:]...)
	l.SetFilter(string(out), from+len(insert))
}

func (l *Level) moveFilterCursor(to int) bool {
	if to == l.FilterCursorPos() {
		return false
	}
	l.FilterCursor = to
	return true
}

// InsertFilterText inserts text at the filter cursor.
func (l *Level) InsertFilterText(text string) bool {
	if text == "" {
		return false
	}
	pos := l.FilterCursorPos()
	l.splice(pos, pos, []rune(text))
	return true
}

// DeleteFilterRuneBackward deletes the rune before the filter cursor.
func (l *Level) DeleteFilterRuneBackward() bool {
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	l.splice(pos-1, pos, nil)
	return true
}

// DeleteFilterWordBackward deletes the word before the filter cursor.
func (l *Level) DeleteFilterWordBackward() bool {
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	l.splice(wordStart([]rune(l.Filter), pos), pos, nil)
	return true
}

func (l *Level) MoveFilterCursorStart() bool {
	return l.moveFilterCursor(0)
}

func (l *Level) MoveFilterCursorEnd() bool {
	return l.moveFilterCursor(len([]rune(l.Filter)))
}

func (l *Level) MoveFilterCursorWordBackward() bool {
	return l.moveFilterCursor(wordStart([]rune(l.Filter), l.FilterCursorPos()))
}

func (l *Level) MoveFilterCursorWordForward() bool {
	return l.moveFilterCursor(wordEnd([]rune(l.Filter), l.FilterCursorPos()))
}

func (l *Level) MoveFilterCursorRuneBackward() bool {
	return l.moveFilterCursor(max(l.FilterCursorPos()-1, 0))
}

func (l *Level) MoveFilterCursorRuneForward() bool {
	return l.moveFilterCursor(min(l.FilterCursorPos()+1, len([]rune(l.Filter))))
}
