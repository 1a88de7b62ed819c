package render

import (
	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/rfz/internal/state"
	"github.com/kk-code-lab/rfz/internal/textutil"
)

// RowFormatter turns an item into the text and style of its row.
type RowFormatter[P any] func(item statepkg.Item[P], selected bool) (string, tcell.Style)

// ListView is a bordered, scrolling list with a cursor. It implements
// statepkg.ListView.
type ListView[P any] struct {
	screen tcell.Screen
	theme  ColorTheme
	format RowFormatter[P]
	rect   Rect
	title  string

	items  []statepkg.Item[P]
	index  int
	offset int
}

// NewListView creates a list drawing rows with format.
func NewListView[P any](screen tcell.Screen, theme ColorTheme, format RowFormatter[P]) *ListView[P] {
	return &ListView[P]{
		screen: screen,
		theme:  theme,
		format: format,
	}
}

// SetRect moves the list, border included.
func (l *ListView[P]) SetRect(rect Rect) {
	l.rect = rect
	l.scrollToCursor()
}

// SetTitle sets the text shown in the top border.
func (l *ListView[P]) SetTitle(title string) {
	l.title = title
}

// Clear blanks the list's region of the screen.
func (l *ListView[P]) Clear() {
	fillRect(l.screen, l.rect, l.theme.base())
}

// Show draws the border and the visible rows.
func (l *ListView[P]) Show() {
	if l.rect.Empty() {
		return
	}
	drawBorder(l.screen, l.rect, textutil.SanitizeTerminalText(l.title), l.theme.border())

	inner := l.rect.Inner()
	l.scrollToCursor()
	for row := 0; row < inner.Height; row++ {
		y := inner.Y + row
		idx := l.offset + row
		if idx >= len(l.items) {
			fillRow(l.screen, inner.X, y, inner.Width, l.theme.base())
			continue
		}

		text, style := l.format(l.items[idx], idx == l.index)
		text = textutil.Truncate(textutil.SanitizeTerminalText(text), inner.Width)
		endX := drawTextLine(l.screen, inner.X, y, inner.Width, text, style)
		fillRow(l.screen, endX, y, inner.X+inner.Width-endX, style)
	}
}

// SetElements replaces the rows. The cursor keeps its row, clamped to the
// new length.
func (l *ListView[P]) SetElements(items []statepkg.Item[P]) {
	l.items = append(l.items[:0:0], items...)
	l.clamp()
}

// SetElement replaces one row in place.
func (l *ListView[P]) SetElement(index int, item statepkg.Item[P]) {
	if index < 0 || index >= len(l.items) {
		return
	}
	l.items[index] = item
}

// Next moves the cursor down, stopping at the last row.
func (l *ListView[P]) Next() {
	if l.index < len(l.items)-1 {
		l.index++
		l.scrollToCursor()
	}
}

// Prev moves the cursor up, stopping at the first row.
func (l *ListView[P]) Prev() {
	if l.index > 0 {
		l.index--
		l.scrollToCursor()
	}
}

func (l *ListView[P]) Index() int {
	return l.index
}

func (l *ListView[P]) SetIndex(index int) {
	l.index = index
	l.clamp()
}

// Select moves the cursor to the first row labelled label.
func (l *ListView[P]) Select(label string) bool {
	for i, item := range l.items {
		if item.Label == label {
			l.index = i
			l.scrollToCursor()
			return true
		}
	}
	return false
}

func (l *ListView[P]) Selected() (string, bool) {
	if len(l.items) == 0 {
		return "", false
	}
	return l.items[l.index].Label, true
}

func (l *ListView[P]) SelectedExtra() (P, bool) {
	if len(l.items) == 0 {
		var zero P
		return zero, false
	}
	return l.items[l.index].Extra, true
}

// Len is the number of rows.
func (l *ListView[P]) Len() int {
	return len(l.items)
}

func (l *ListView[P]) clamp() {
	if l.index >= len(l.items) {
		l.index = len(l.items) - 1
	}
	if l.index < 0 {
		l.index = 0
	}
	l.scrollToCursor()
}

// scrollToCursor keeps the cursor row inside the visible window.
func (l *ListView[P]) scrollToCursor() {
	rows := l.rect.Inner().Height
	if rows <= 0 {
		l.offset = 0
		return
	}
	if l.index < l.offset {
		l.offset = l.index
	}
	if l.index >= l.offset+rows {
		l.offset = l.index - rows + 1
	}
	if maxOffset := max(len(l.items)-rows, 0); l.offset > maxOffset {
		l.offset = maxOffset
	}
	if l.offset < 0 {
		l.offset = 0
	}
}
