package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/rfz/internal/textutil"
)

// PathBar is the location line above the lists. It implements
// statepkg.PathBar.
type PathBar struct {
	screen tcell.Screen
	theme  ColorTheme
	rect   Rect
}

func NewPathBar(screen tcell.Screen, theme ColorTheme) *PathBar {
	return &PathBar{screen: screen, theme: theme}
}

func (p *PathBar) SetRect(rect Rect) {
	p.rect = rect
}

func (p *PathBar) Clear() {
	fillRect(p.screen, p.rect, p.style())
}

// WriteTrimmed draws text at (row, col) inside the bar. Text that does not
// fit loses its head, so the deepest path components stay visible.
func (p *PathBar) WriteTrimmed(text string, row, col int) error {
	if row < 0 || row >= p.rect.Height {
		return fmt.Errorf("path bar row %d outside %d rows", row, p.rect.Height)
	}
	if col < 0 || col >= p.rect.Width {
		return fmt.Errorf("path bar column %d outside %d columns", col, p.rect.Width)
	}

	available := p.rect.Width - col
	text = textutil.TruncateLeft(textutil.SanitizeTerminalText(text), available)
	drawTextLine(p.screen, p.rect.X+col, p.rect.Y+row, available, text, p.style())
	return nil
}

func (p *PathBar) style() tcell.Style {
	return p.theme.base().Foreground(p.theme.PathFg).Bold(true)
}
