package render

import (
	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/rfz/internal/state"
	"github.com/kk-code-lab/rfz/internal/textutil"
)

// PreviewPane draws a statepkg.Preview inside a bordered rect. It
// implements statepkg.PreviewPane.
type PreviewPane struct {
	screen      tcell.Screen
	theme       ColorTheme
	highlighter *Highlighter
	rect        Rect

	title string
	lines [][]segment
}

func NewPreviewPane(screen tcell.Screen, theme ColorTheme, highlighter *Highlighter) *PreviewPane {
	return &PreviewPane{
		screen:      screen,
		theme:       theme,
		highlighter: highlighter,
	}
}

func (p *PreviewPane) SetRect(rect Rect) {
	p.rect = rect
}

// Clear blanks the pane's region and forgets its content.
func (p *PreviewPane) Clear() {
	p.title = ""
	p.lines = nil
	fillRect(p.screen, p.rect, p.theme.base())
}

// SetPreview lays out the rows for preview. Only as many rows as fit are
// prepared.
func (p *PreviewPane) SetPreview(preview statepkg.Preview) {
	p.title = preview.Name
	rows := p.rect.Inner().Height

	switch preview.Kind {
	case statepkg.PreviewDirectory:
		entries := preview.Entries[:min(len(preview.Entries), rows)]
		p.lines = make([][]segment, len(entries))
		for i, e := range entries {
			item := statepkg.Item[statepkg.EntryTag]{
				Extra: statepkg.EntryTag{Type: e.Type},
				Label: e.Name,
			}
			text, style := p.theme.entryRow(item, false)
			p.lines[i] = []segment{{text: text, style: style}}
		}

	case statepkg.PreviewText:
		lines := preview.Lines[:min(len(preview.Lines), rows)]
		expanded := make([]string, len(lines))
		for i, line := range lines {
			expanded[i] = textutil.ExpandTabs(line, textutil.DefaultTabWidth)
		}
		p.lines = p.highlighter.Highlight(preview.Name, expanded, p.textStyle())

	case statepkg.PreviewBinary:
		p.lines = plainSegments(preview.Lines[:min(len(preview.Lines), rows)], p.binaryStyle())

	default:
		p.lines = nil
	}
}

// Show draws the border and the prepared rows, clipped to the pane.
func (p *PreviewPane) Show() {
	if p.rect.Empty() {
		return
	}
	drawBorder(p.screen, p.rect, textutil.Truncate(textutil.SanitizeTerminalText(p.title), p.rect.Width-4), p.theme.border())

	inner := p.rect.Inner()
	for row := 0; row < inner.Height; row++ {
		y := inner.Y + row
		fillRow(p.screen, inner.X, y, inner.Width, p.theme.base())
		if row >= len(p.lines) {
			continue
		}

		x := inner.X
		for _, seg := range p.lines[row] {
			remaining := inner.X + inner.Width - x
			if remaining <= 0 {
				break
			}
			text := textutil.Clip(textutil.SanitizeTerminalText(seg.text), remaining)
			x = drawTextLine(p.screen, x, y, remaining, text, seg.style)
		}
	}
}

func (p *PreviewPane) textStyle() tcell.Style {
	return p.theme.base().Foreground(p.theme.PreviewFg)
}

func (p *PreviewPane) binaryStyle() tcell.Style {
	return p.theme.base().Foreground(p.theme.BinaryFg)
}
