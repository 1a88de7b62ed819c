package fs

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

const (
	sniffSampleSize              = 4096
	nonPrintableThresholdPercent = 30
)

type textEncoding int

const (
	encodingPlain textEncoding = iota
	encodingUTF8BOM
	encodingUTF16LE
	encodingUTF16BE
)

var binaryExtensions = map[string]struct{}{
	".7z": {}, ".a": {}, ".bin": {}, ".bmp": {}, ".bz2": {}, ".class": {},
	".dll": {}, ".dylib": {}, ".exe": {}, ".gif": {}, ".gz": {}, ".ico": {},
	".iso": {}, ".jar": {}, ".jpeg": {}, ".jpg": {}, ".mp3": {}, ".mp4": {},
	".o": {}, ".pdf": {}, ".png": {}, ".so": {}, ".tar": {}, ".tgz": {},
	".ttf": {}, ".wasm": {}, ".webp": {}, ".woff": {}, ".woff2": {},
	".xz": {}, ".zip": {}, ".zst": {},
}

// ReadFileHead returns up to limit bytes from the start of path.
func ReadFileHead(path string, limit int64) ([]byte, error) {
	if limit <= 0 {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	return io.ReadAll(io.LimitReader(f, limit))
}

// IsTextContent guesses whether content read from path is text. Obvious
// binary extensions short-circuit before the sample is inspected.
func IsTextContent(path string, content []byte) bool {
	if _, ok := binaryExtensions[strings.ToLower(filepath.Ext(path))]; ok {
		return false
	}
	if len(content) == 0 {
		return true
	}

	sample := content
	if len(sample) > sniffSampleSize {
		sample = sample[:sniffSampleSize]
	}

	if detectEncoding(sample) != encodingPlain {
		return true
	}
	if bytes.IndexByte(sample, 0x00) != -1 {
		return false
	}
	if utf8.Valid(sample) {
		return true
	}

	nonPrintable := 0
	for _, b := range sample {
		if !isTextByte(b) {
			nonPrintable++
		}
	}
	return nonPrintable*100/len(sample) < nonPrintableThresholdPercent
}

// DecodeText converts BOM-marked UTF-8/UTF-16 content to a UTF-8 string.
// Content without a BOM is returned as-is.
func DecodeText(content []byte) string {
	switch detectEncoding(content) {
	case encodingUTF8BOM:
		return string(content[3:])
	case encodingUTF16LE:
		return decodeUTF16(content, unicode.LittleEndian)
	case encodingUTF16BE:
		return decodeUTF16(content, unicode.BigEndian)
	default:
		return string(content)
	}
}

func decodeUTF16(content []byte, endian unicode.Endianness) string {
	out, err := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder().Bytes(content)
	if err != nil {
		return string(content)
	}
	return string(out)
}

func isTextByte(b byte) bool {
	switch {
	case b == '\t' || b == '\n' || b == '\r' || b == 0x1B:
		return true
	case b >= 0x20 && b <= 0x7E:
		return true
	default:
		return b >= 0x80
	}
}

func detectEncoding(sample []byte) textEncoding {
	switch {
	case len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF:
		return encodingUTF8BOM
	case len(sample) >= 2 && sample[0] == 0xFF && sample[1] == 0xFE:
		return encodingUTF16LE
	case len(sample) >= 2 && sample[0] == 0xFE && sample[1] == 0xFF:
		return encodingUTF16BE
	default:
		return encodingPlain
	}
}
