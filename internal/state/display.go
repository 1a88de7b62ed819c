package state

import fsutil "github.com/kk-code-lab/rfz/internal/fs"

// EntryTag is the per-row payload of the main list.
type EntryTag struct {
	Type        fsutil.EntryType
	Highlighted bool
}

// Item is one row of a list view: a payload plus the label shown.
type Item[P any] struct {
	Extra P
	Label string
}

// ListView is a cursor-driven list on the display surface.
//
// SetElements keeps the cursor row, clamped to the new length. Next and Prev
// clamp at the ends. Selected reports false when the list is empty.
type ListView[P any] interface {
	Clear()
	Show()
	SetElements(items []Item[P])
	SetElement(index int, item Item[P])
	Next()
	Prev()
	Index() int
	SetIndex(index int)
	Select(label string) bool
	Selected() (string, bool)
	SelectedExtra() (P, bool)
}

// PreviewPane renders a derived Preview.
type PreviewPane interface {
	Clear()
	SetPreview(p Preview)
	Show()
}

// PathBar is the one-line location bar.
type PathBar interface {
	Clear()
	WriteTrimmed(text string, row, col int) error
}

// Sink flushes drawn content to the terminal. tcell.Screen satisfies it.
type Sink interface {
	Show()
}

// Display groups the surfaces the controller draws on.
type Display struct {
	Main    ListView[EntryTag]
	Preview PreviewPane
	Path    PathBar
	Sink    Sink
}

func itemsFor(entries []fsutil.Entry) []Item[EntryTag] {
	items := make([]Item[EntryTag], len(entries))
	for i, e := range entries {
		items[i] = itemFor(e)
	}
	return items
}

func itemFor(e fsutil.Entry) Item[EntryTag] {
	return Item[EntryTag]{
		Extra: EntryTag{Type: e.Type, Highlighted: e.Highlighted},
		Label: e.Name,
	}
}
