package state

import "testing"

func newTestLevel(ids ...string) *Level {
	items := make([]Item, len(ids))
	for i, id := range ids {
		items[i] = Item{ID: id, Label: id}
	}
	return NewLevel("test", "Test", items)
}

func TestNewLevelStartsOnFirstItem(t *testing.T) {
	l := newTestLevel("a", "b")
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}
	if item, ok := l.Selected(); !ok || item.ID != "a" {
		t.Fatalf("expected a selected, got %#v/%v", item, ok)
	}
	empty := newTestLevel()
	if _, ok := empty.Selected(); ok {
		t.Fatalf("expected nothing selected on empty level")
	}
}

func TestMoveCursorClamps(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	if l.MoveCursorUp() {
		t.Fatalf("expected no movement above first item")
	}
	if !l.MoveCursorDown() || !l.MoveCursorDown() {
		t.Fatalf("expected movement down")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if l.MoveCursorDown() {
		t.Fatalf("expected no movement past last item")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor to stay at 2, got %d", l.Cursor)
	}
	if !l.MoveCursorUp() || l.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", l.Cursor)
	}

	empty := newTestLevel()
	if empty.MoveCursorDown() {
		t.Fatalf("expected no movement for empty level")
	}
}

func TestIndexOf(t *testing.T) {
	l := newTestLevel("a", "b")
	if got := l.IndexOf("b"); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := l.IndexOf("z"); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
	if got := l.IndexOf(""); got != -1 {
		t.Fatalf("expected -1 for empty id, got %d", got)
	}
}

func TestUpdateItemsClampsCursor(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	l.Cursor = 2
	l.ViewportOffset = 2
	l.UpdateItems([]Item{{ID: "a"}})
	if l.Cursor != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", l.Cursor)
	}
	if l.ViewportOffset != 0 {
		t.Fatalf("expected viewport reset, got %d", l.ViewportOffset)
	}
}

func TestEnsureCursorVisible(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	l.Cursor = 4
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset)
	}
	l.Cursor = 1
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 1 {
		t.Fatalf("expected offset 1, got %d", l.ViewportOffset)
	}
	l.EnsureCursorVisible(0)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset 0 when height unknown, got %d", l.ViewportOffset)
	}
}
