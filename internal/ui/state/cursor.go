package state

// MoveCursorUp moves the cursor one entry up, stopping at the first item.
func (l *Level) MoveCursorUp() bool {
	return l.moveCursorBy(-1)
}

// MoveCursorDown moves the cursor one entry down, stopping at the last item.
func (l *Level) MoveCursorDown() bool {
	return l.moveCursorBy(1)
}

func (l *Level) moveCursorBy(delta int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	l.Cursor += delta
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	return l.Cursor != old
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	l.ViewportOffset = visibleOffset(l.Cursor, l.ViewportOffset, len(l.Items), maxVisible)
}

// visibleOffset returns the viewport offset that keeps cursor within a window
// of maxVisible rows over total rows, moving the current offset as little as
// possible.
func visibleOffset(cursor, offset, total, maxVisible int) int {
	if total == 0 || maxVisible <= 0 {
		return 0
	}
	maxOffset := total - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	if cursor < offset {
		offset = cursor
	}
	upper := offset + maxVisible - 1
	if cursor > upper {
		offset = cursor - maxVisible + 1
		if offset < 0 {
			offset = 0
		}
		if offset > maxOffset {
			offset = maxOffset
		}
	}
	return offset
}
