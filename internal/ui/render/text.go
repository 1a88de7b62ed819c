package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawTextLine draws text from startX, stopping before maxWidth columns are
// used. Zero-width runes ride along as combining characters of the
// preceding cell. It returns the first column after the text.
func drawTextLine(screen tcell.Screen, startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(text)
	i := 0

	for i < len(runes) {
		mainc := runes[i]
		i++

		var combc []rune
		for i < len(runes) && runewidth.RuneWidth(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		w := runewidth.RuneWidth(mainc)
		if w <= 0 {
			w = 1
		}
		if x-startX+w > maxWidth {
			break
		}

		screen.SetContent(x, y, mainc, combc, style)
		x += w
	}

	return x
}

func fillRow(screen tcell.Screen, startX, y, width int, style tcell.Style) {
	for x := startX; x < startX+width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}
