package render

import "github.com/gdamore/tcell/v2"

// Rect is a screen region in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the rect has no drawable cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inner is the rect inside a one-cell border.
func (r Rect) Inner() Rect {
	inner := Rect{X: r.X + 1, Y: r.Y + 1, Width: r.Width - 2, Height: r.Height - 2}
	if inner.Width < 0 {
		inner.Width = 0
	}
	if inner.Height < 0 {
		inner.Height = 0
	}
	return inner
}

// Layout places the path bar on the top row and splits the rest between
// the main list on the left and the preview on the right.
type Layout struct {
	Path    Rect
	Main    Rect
	Preview Rect
}

const pathBarHeight = 1

// ComputeLayout splits a w x h screen.
func ComputeLayout(w, h int) Layout {
	w = max(w, 0)
	h = max(h, 0)

	bodyHeight := max(h-pathBarHeight, 0)
	mainWidth := w / 2

	return Layout{
		Path:    Rect{X: 0, Y: 0, Width: w, Height: min(pathBarHeight, h)},
		Main:    Rect{X: 0, Y: pathBarHeight, Width: mainWidth, Height: bodyHeight},
		Preview: Rect{X: mainWidth, Y: pathBarHeight, Width: w - mainWidth, Height: bodyHeight},
	}
}

// drawBorder draws a lined frame around rect, with an optional title set
// into the top edge.
func drawBorder(screen tcell.Screen, rect Rect, title string, style tcell.Style) {
	if rect.Width < 2 || rect.Height < 2 {
		return
	}
	left, top := rect.X, rect.Y
	right, bottom := rect.X+rect.Width-1, rect.Y+rect.Height-1

	for x := left + 1; x < right; x++ {
		screen.SetContent(x, top, tcell.RuneHLine, nil, style)
		screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		screen.SetContent(left, y, tcell.RuneVLine, nil, style)
		screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	screen.SetContent(left, top, tcell.RuneULCorner, nil, style)
	screen.SetContent(right, top, tcell.RuneURCorner, nil, style)
	screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)

	if title != "" && rect.Width > 4 {
		drawTextLine(screen, left+1, top, rect.Width-2, " "+title+" ", style)
	}
}

func fillRect(screen tcell.Screen, rect Rect, style tcell.Style) {
	for y := rect.Y; y < rect.Y+rect.Height; y++ {
		fillRow(screen, rect.X, y, rect.Width, style)
	}
}
