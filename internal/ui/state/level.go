package state

// Item is a single entry in a Level.
type Item struct {
	ID    string
	Label string
}

// Level encapsulates list state such as cursor position and viewport.
type Level struct {
	ID             string
	Title          string
	Items          []Item
	Cursor         int
	ViewportOffset int
}

// NewLevel constructs a Level over items with the cursor on the first entry.
func NewLevel(id, title string, items []Item) *Level {
	l := &Level{
		ID:     id,
		Title:  title,
		Cursor: -1,
	}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the index for a given item identifier.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Selected returns the item under the cursor.
func (l *Level) Selected() (Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Item{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems replaces the level items, keeping the cursor and viewport in
// range.
func (l *Level) UpdateItems(items []Item) {
	l.Items = CloneItems(items)
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
	if l.ViewportOffset < 0 || l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
