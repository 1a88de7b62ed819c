package fs

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTextContent(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content []byte
		want    bool
	}{
		{"empty", "a.txt", nil, true},
		{"ascii", "a.txt", []byte("hello\nworld\n"), true},
		{"utf8", "a.txt", []byte("zażółć gęślą jaźń"), true},
		{"nul byte", "a.dat", []byte{'a', 0x00, 'b'}, false},
		{"binary extension", "a.png", []byte("looks like text"), false},
		{"utf16 bom", "a.txt", []byte{0xFF, 0xFE, 'h', 0x00}, true},
		{"mostly control bytes", "a", []byte{0x01, 0x02, 0x03, 0x04, 0xFF}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTextContent(tt.path, tt.content))
		})
	}
}

func TestDecodeText(t *testing.T) {
	assert.Equal(t, "hi", DecodeText([]byte{0xEF, 0xBB, 0xBF, 'h', 'i'}))
	assert.Equal(t, "hi", DecodeText([]byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00}))
	assert.Equal(t, "hi", DecodeText([]byte{0xFE, 0xFF, 0x00, 'h', 0x00, 'i'}))
	assert.Equal(t, "plain", DecodeText([]byte("plain")))
}

func TestReadFileHeadLimits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.txt")
	writeFile(t, path, strings.Repeat("x", 100))

	data, err := ReadFileHead(path, 10)
	require.NoError(t, err)
	assert.Len(t, data, 10)

	data, err = ReadFileHead(path, 0)
	require.NoError(t, err)
	assert.Nil(t, data)

	_, err = ReadFileHead(filepath.Join(t.TempDir(), "missing"), 10)
	assert.Error(t, err)
}
