package state

import (
	"fmt"
	"strings"

	fsutil "github.com/kk-code-lab/rfz/internal/fs"
)

const (
	// DefaultPreviewLimit caps how much of a file is read for its preview.
	DefaultPreviewLimit int64 = 256 * 1024

	binaryPreviewMaxBytes  = 1024
	binaryPreviewLineWidth = 16
)

// PreviewKind tells the pane how to draw a Preview.
type PreviewKind int

const (
	PreviewEmpty PreviewKind = iota
	PreviewDirectory
	PreviewText
	PreviewBinary
)

// Preview is the derived content of the preview pane.
type Preview struct {
	Kind    PreviewKind
	Name    string
	Entries []fsutil.Entry
	Lines   []string
}

// BuildPreview derives the preview for the named child of the model's
// current directory. Directories list their immediate children with no
// highlights; files show their lines (binary files as a hex dump). Anything
// that cannot be resolved or read gives an empty preview.
func BuildPreview(model *fsutil.Model, name string, limit int64) Preview {
	if model == nil || name == "" {
		return Preview{}
	}

	entryType, err := model.TypeOf(name)
	if err != nil {
		return Preview{}
	}

	if entryType == fsutil.Directory {
		entries, err := model.ListChildrenOf(name)
		if err != nil {
			return Preview{}
		}
		return Preview{Kind: PreviewDirectory, Name: name, Entries: entries}
	}

	path, err := model.PathOf(name)
	if err != nil {
		return Preview{}
	}
	if limit <= 0 {
		limit = DefaultPreviewLimit
	}
	content, err := fsutil.ReadFileHead(path, limit)
	if err != nil {
		return Preview{}
	}

	if !fsutil.IsTextContent(path, content) {
		return Preview{Kind: PreviewBinary, Name: name, Lines: formatHexDump(content)}
	}
	return Preview{Kind: PreviewText, Name: name, Lines: splitLines(fsutil.DecodeText(content))}
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func formatHexDump(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	total := len(content)
	if len(content) > binaryPreviewMaxBytes {
		content = content[:binaryPreviewMaxBytes]
	}

	lines := make([]string, 0, len(content)/binaryPreviewLineWidth+2)
	for offset := 0; offset < len(content); offset += binaryPreviewLineWidth {
		end := min(offset+binaryPreviewLineWidth, len(content))
		lines = append(lines, formatHexLine(offset, content[offset:end]))
	}
	if total > len(content) {
		lines = append(lines, fmt.Sprintf("… (%d more bytes)", total-len(content)))
	}
	return lines
}

func formatHexLine(offset int, chunk []byte) string {
	var b strings.Builder
	b.Grow(80)
	fmt.Fprintf(&b, "%08X  ", offset)

	for i := 0; i < binaryPreviewLineWidth; i++ {
		if i < len(chunk) {
			fmt.Fprintf(&b, "%02X ", chunk[i])
		} else {
			b.WriteString("   ")
		}
		if i == 7 {
			b.WriteByte(' ')
		}
	}

	b.WriteString(" |")
	for _, c := range chunk {
		if c >= 32 && c <= 126 {
			b.WriteByte(c)
		} else {
			b.WriteByte('.')
		}
	}
	b.WriteString(strings.Repeat(" ", binaryPreviewLineWidth-len(chunk)))
	b.WriteByte('|')
	return b.String()
}
