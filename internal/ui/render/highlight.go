package render

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
)

var getStyle = styles.Get

// segment is a run of text drawn in one style.
type segment struct {
	text  string
	style tcell.Style
}

// Highlighter colours preview text with a chroma style. A nil Highlighter,
// or one built with an empty style name, leaves text plain.
type Highlighter struct {
	style *chroma.Style
}

// NewHighlighter resolves styleName. Unknown names fall back to chroma's
// default style.
func NewHighlighter(styleName string) *Highlighter {
	if strings.TrimSpace(styleName) == "" {
		return nil
	}
	style := getStyle(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &Highlighter{style: style}
}

// Highlight splits lines into styled segments, picking the lexer by file
// name. Files no lexer claims come back as one plain segment per line. The
// result always has one entry per input line.
func (h *Highlighter) Highlight(name string, lines []string, base tcell.Style) [][]segment {
	if h == nil || h.style == nil || len(lines) == 0 {
		return plainSegments(lines, base)
	}
	lexer := lexers.Match(name)
	if lexer == nil {
		return plainSegments(lines, base)
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, strings.Join(lines, "\n"))
	if err != nil {
		return plainSegments(lines, base)
	}

	out := make([][]segment, 1, len(lines))
	for _, token := range iterator.Tokens() {
		style := h.styleFor(token.Type, base)
		for i, part := range strings.Split(token.Value, "\n") {
			if i > 0 {
				out = append(out, nil)
			}
			if part != "" {
				last := len(out) - 1
				out[last] = append(out[last], segment{text: part, style: style})
			}
		}
	}

	// Lexers may add or drop a trailing newline.
	for len(out) < len(lines) {
		out = append(out, nil)
	}
	return out[:len(lines)]
}

func (h *Highlighter) styleFor(tokenType chroma.TokenType, base tcell.Style) tcell.Style {
	entry := h.style.Get(tokenType)
	style := base
	if entry.Colour.IsSet() {
		style = style.Foreground(chromaColor(entry.Colour))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}
	return style
}

func chromaColor(c chroma.Colour) tcell.Color {
	return tcell.NewRGBColor(int32(c.Red()), int32(c.Green()), int32(c.Blue()))
}

func plainSegments(lines []string, base tcell.Style) [][]segment {
	out := make([][]segment, len(lines))
	for i, line := range lines {
		if line != "" {
			out[i] = []segment{{text: line, style: base}}
		}
	}
	return out
}
