package state

import "github.com/atomicstack/route-guide/internal/walkthrough"

// Row is one line of the route-detail list: either a chapter header or a
// step. Only StepRow is selectable.
type Row interface {
	ChapterIndex() int
	isRow()
}

// HeaderRow introduces a chapter. It holds no step reference.
type HeaderRow struct {
	Chapter int
}

// StepRow references a step by chapter and in-chapter position.
type StepRow struct {
	Chapter int
	Step    int
}

func (r HeaderRow) ChapterIndex() int { return r.Chapter }
func (r StepRow) ChapterIndex() int   { return r.Chapter }

func (HeaderRow) isRow() {}
func (StepRow) isRow()   {}

// DisplayMap flattens a route into rows for a single list. Cursor is a row
// index, or -1 when nothing is selected.
type DisplayMap struct {
	Rows           []Row
	Cursor         int
	ViewportOffset int
}

// BuildDisplayMap emits one header per chapter followed by one row per step.
// Chapters without steps still emit their header.
func BuildDisplayMap(route walkthrough.Route) *DisplayMap {
	d := &DisplayMap{Cursor: -1}
	for c, ch := range route.Chapters {
		d.Rows = append(d.Rows, HeaderRow{Chapter: c})
		for s := range ch.Steps {
			d.Rows = append(d.Rows, StepRow{Chapter: c, Step: s})
		}
	}
	return d
}

// Len returns the number of rows, headers included.
func (d *DisplayMap) Len() int {
	return len(d.Rows)
}

// Row returns the row at idx.
func (d *DisplayMap) Row(idx int) (Row, bool) {
	if idx < 0 || idx >= len(d.Rows) {
		return nil, false
	}
	return d.Rows[idx], true
}

// Resolve maps a row index to its step reference. Headers and out-of-range
// indices do not resolve.
func (d *DisplayMap) Resolve(idx int) (StepRow, bool) {
	row, ok := d.Row(idx)
	if !ok {
		return StepRow{}, false
	}
	step, ok := row.(StepRow)
	return step, ok
}

// Current resolves the cursor row.
func (d *DisplayMap) Current() (StepRow, bool) {
	return d.Resolve(d.Cursor)
}

// HasSelection reports whether the cursor is on a row at all.
func (d *DisplayMap) HasSelection() bool {
	return d.Cursor >= 0 && d.Cursor < len(d.Rows)
}

// Unselect clears the cursor.
func (d *DisplayMap) Unselect() {
	d.Cursor = -1
}

// FirstSelectable returns the index of the first step row, or -1.
func (d *DisplayMap) FirstSelectable() int {
	for i := range d.Rows {
		if d.selectable(i) {
			return i
		}
	}
	return -1
}

// SelectFirst moves the cursor to the first step row, leaving it unselected
// when there is none.
func (d *DisplayMap) SelectFirst() {
	d.Cursor = d.FirstSelectable()
	d.ViewportOffset = 0
}

// SelectableCount returns the number of step rows.
func (d *DisplayMap) SelectableCount() int {
	n := 0
	for i := range d.Rows {
		if d.selectable(i) {
			n++
		}
	}
	return n
}

// MoveDown advances to the next step row, wrapping past the end.
func (d *DisplayMap) MoveDown() bool {
	return d.step(1)
}

// MoveUp advances to the previous step row, wrapping past the start.
func (d *DisplayMap) MoveUp() bool {
	return d.step(-1)
}

// step scans from the cursor in the given direction for the nearest step
// row. An unselected cursor scans from row 0.
func (d *DisplayMap) step(dir int) bool {
	n := len(d.Rows)
	if n == 0 {
		return false
	}
	start := d.Cursor
	if start < 0 || start >= n {
		start = 0
	}
	for i := 1; i <= n; i++ {
		idx := ((start+dir*i)%n + n) % n
		if !d.selectable(idx) {
			continue
		}
		if idx == d.Cursor {
			return false
		}
		d.Cursor = idx
		return true
	}
	return false
}

func (d *DisplayMap) selectable(idx int) bool {
	_, ok := d.Resolve(idx)
	return ok
}

// EnsureCursorVisible adjusts the viewport offset so the cursor row stays
// within maxVisible rows.
func (d *DisplayMap) EnsureCursorVisible(maxVisible int) {
	cursor := d.Cursor
	if cursor < 0 {
		cursor = 0
	}
	d.ViewportOffset = visibleOffset(cursor, d.ViewportOffset, len(d.Rows), maxVisible)
}
