package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const DefaultTabWidth = 4

const ellipsis = "…"

// ExpandTabs replaces tab characters with spaces respecting terminal column width.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var builder strings.Builder
	column := 0
	for _, ru := range text {
		if ru == '\t' {
			spaces := tabWidth - (column % tabWidth)
			builder.WriteString(strings.Repeat(" ", spaces))
			column += spaces
			continue
		}
		builder.WriteRune(ru)
		column += max(runewidth.RuneWidth(ru), 0)
	}
	return builder.String()
}

// DisplayWidth reports the printable width of text accounting for wide runes.
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// Clip cuts text to at most width columns without an ellipsis.
func Clip(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, "")
}

// Truncate cuts text to at most width columns, marking the cut with an
// ellipsis.
func Truncate(text string, width int) string {
	if width <= 0 || text == "" {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	if width <= runewidth.StringWidth(ellipsis) {
		return ellipsis
	}
	return runewidth.Truncate(text, width, ellipsis)
}

// TruncateLeft keeps the tail of text within width columns, marking the cut
// with a leading ellipsis.
func TruncateLeft(text string, width int) string {
	if width <= 0 || text == "" {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	budget := width - runewidth.StringWidth(ellipsis)
	if budget <= 0 {
		return ellipsis
	}

	runes := []rune(text)
	start := len(runes)
	used := 0
	for start > 0 {
		w := max(runewidth.RuneWidth(runes[start-1]), 0)
		if used+w > budget {
			break
		}
		used += w
		start--
	}
	return ellipsis + string(runes[start:])
}
