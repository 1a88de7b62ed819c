package textutil

import "strings"

// invisibleRuneLabels names bidi controls and zero-width runes that could
// make a file name render as something it is not.
var invisibleRuneLabels = map[rune]string{
	0x061C: "⟪ALM⟫",
	0x200B: "⟪ZWSP⟫",
	0x200C: "⟪ZWNJ⟫",
	0x200D: "⟪ZWJ⟫",
	0x200E: "⟪LRM⟫",
	0x200F: "⟪RLM⟫",
	0x202A: "⟪LRE⟫",
	0x202B: "⟪RLE⟫",
	0x202C: "⟪PDF⟫",
	0x202D: "⟪LRO⟫",
	0x202E: "⟪RLO⟫",
	0x2066: "⟪LRI⟫",
	0x2067: "⟪RLI⟫",
	0x2068: "⟪FSI⟫",
	0x2069: "⟪PDI⟫",
	0xFEFF: "⟪BOM⟫",
}

// SanitizeTerminalText replaces control characters so names and file
// contents cannot inject terminal escape sequences when drawn. Line breaks
// and tabs become spaces; invisible formatting runes are labelled.
func SanitizeTerminalText(text string) string {
	if !strings.ContainsFunc(text, needsSanitizing) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if label, ok := invisibleRuneLabels[r]; ok {
			b.WriteString(label)
			continue
		}
		switch {
		case r == '\t', r == '\n', r == '\r':
			b.WriteByte(' ')
		case r < 0x20 || r == 0x7f:
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsSanitizing(r rune) bool {
	if _, ok := invisibleRuneLabels[r]; ok {
		return true
	}
	return r < 0x20 || r == 0x7f
}
