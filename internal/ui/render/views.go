package render

import (
	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/rfz/internal/state"
)

// Views owns the tcell widgets that make up the display surface.
type Views struct {
	screen  tcell.Screen
	layout  Layout
	Main    *ListView[statepkg.EntryTag]
	Preview *PreviewPane
	Path    *PathBar
}

// NewViews builds the widgets and lays them out for the current screen
// size.
func NewViews(screen tcell.Screen, theme ColorTheme, highlighter *Highlighter) *Views {
	v := &Views{
		screen:  screen,
		Main:    NewListView[statepkg.EntryTag](screen, theme, theme.entryRow),
		Preview: NewPreviewPane(screen, theme, highlighter),
		Path:    NewPathBar(screen, theme),
	}
	v.Resize()
	return v
}

// Resize recomputes the layout from the screen size and clears the screen
// so no stale borders remain.
func (v *Views) Resize() {
	w, h := v.screen.Size()
	v.layout = ComputeLayout(w, h)
	v.screen.Clear()
	v.Main.SetRect(v.layout.Main)
	v.Preview.SetRect(v.layout.Preview)
	v.Path.SetRect(v.layout.Path)
}

// Layout returns the current placement of the widgets.
func (v *Views) Layout() Layout {
	return v.layout
}

// Display exposes the widgets through the controller's surface contract.
func (v *Views) Display() statepkg.Display {
	return statepkg.Display{
		Main:    v.Main,
		Preview: v.Preview,
		Path:    v.Path,
		Sink:    v.screen,
	}
}
