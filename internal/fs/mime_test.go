package fs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withCommandOutput(t *testing.T, fn func(name string, args ...string) ([]byte, error)) {
	t.Helper()
	orig := commandOutput
	commandOutput = fn
	t.Cleanup(func() {
		commandOutput = orig
	})
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		in   string
		want MimeCategory
	}{
		{"text/plain\n", MimeText},
		{"text/x-go; charset=utf-8", MimeText},
		{"image/png\n", MimeOther},
		{"application/octet-stream", MimeOther},
		{"", MimeOther},
		{"garbage", MimeOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CategoryOf(tt.in), "input %q", tt.in)
	}
}

func TestCommandClassifierRunsCommandWithPath(t *testing.T) {
	var gotName string
	var gotArgs []string
	withCommandOutput(t, func(name string, args ...string) ([]byte, error) {
		gotName = name
		gotArgs = args
		return []byte("text/plain\n"), nil
	})

	c := &CommandClassifier{}
	assert.Equal(t, MimeText, c.Classify("/tmp/notes"))
	assert.Equal(t, "file", gotName)
	assert.Equal(t, []string{"--mime-type", "-b", "/tmp/notes"}, gotArgs)
}

func TestCommandClassifierFailureIsOther(t *testing.T) {
	withCommandOutput(t, func(string, ...string) ([]byte, error) {
		return nil, errors.New("exec: file: not found")
	})

	c := &CommandClassifier{Command: []string{"mimetype"}}
	assert.Equal(t, MimeOther, c.Classify("/tmp/notes"))
}

func TestCommandClassifierTextPatternsSkipCommand(t *testing.T) {
	called := false
	withCommandOutput(t, func(string, ...string) ([]byte, error) {
		called = true
		return []byte("application/octet-stream"), nil
	})

	c, err := NewCommandClassifier(nil, []string{"*.{md,txt}", "Makefile"})
	require.NoError(t, err)

	assert.Equal(t, MimeText, c.Classify("/src/README.md"))
	assert.Equal(t, MimeText, c.Classify("/src/Makefile"))
	assert.False(t, called)

	assert.Equal(t, MimeOther, c.Classify("/src/blob.bin"))
	assert.True(t, called)
}

func TestNewCommandClassifierRejectsBadPattern(t *testing.T) {
	_, err := NewCommandClassifier(nil, []string{"[unterminated"})
	assert.Error(t, err)
}
