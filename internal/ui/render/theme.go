package render

import (
	"github.com/gdamore/tcell/v2"

	fsutil "github.com/kk-code-lab/rfz/internal/fs"
	statepkg "github.com/kk-code-lab/rfz/internal/state"
)

// ColorTheme defines application colors.
type ColorTheme struct {
	Foreground  tcell.Color
	Background  tcell.Color
	BorderFg    tcell.Color
	PathFg      tcell.Color
	SelectionBg tcell.Color
	SelectionFg tcell.Color
	DirectoryFg tcell.Color
	FileFg      tcell.Color
	PreviewFg   tcell.Color
	BinaryFg    tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Foreground:  tcell.ColorDefault,
		Background:  tcell.ColorDefault,
		BorderFg:    tcell.ColorGray,
		PathFg:      tcell.ColorDefault,
		SelectionBg: tcell.Color33,
		SelectionFg: tcell.ColorWhite,
		DirectoryFg: tcell.Color33,
		FileFg:      tcell.ColorDefault,
		PreviewFg:   tcell.ColorDefault,
		BinaryFg:    tcell.ColorLightSlateGray,
	}
}

func (t ColorTheme) base() tcell.Style {
	return tcell.StyleDefault.Background(t.Background).Foreground(t.Foreground)
}

func (t ColorTheme) border() tcell.Style {
	return t.base().Foreground(t.BorderFg)
}

// entryStyle colours directories apart from files and inverts highlighted
// rows. The cursor row takes the selection colours on top.
func (t ColorTheme) entryStyle(tag statepkg.EntryTag, selected bool) tcell.Style {
	style := t.base().Foreground(t.FileFg)
	if tag.Type == fsutil.Directory {
		style = style.Foreground(t.DirectoryFg)
	}
	if selected {
		style = style.Background(t.SelectionBg).Foreground(t.SelectionFg)
	}
	if tag.Highlighted {
		style = style.Reverse(true)
	}
	return style
}

// entryRow formats a main-list row: a type marker then the name.
func (t ColorTheme) entryRow(item statepkg.Item[statepkg.EntryTag], selected bool) (string, tcell.Style) {
	return entryPrefix(item.Extra.Type) + item.Label, t.entryStyle(item.Extra, selected)
}

func entryPrefix(entryType fsutil.EntryType) string {
	if entryType == fsutil.Directory {
		return " / "
	}
	return "   "
}
