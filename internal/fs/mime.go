package fs

import (
	"fmt"
	"mime"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// MimeCategory is the coarse content class used to pick how a file opens.
type MimeCategory int

const (
	MimeOther MimeCategory = iota
	MimeText
)

func (c MimeCategory) String() string {
	if c == MimeText {
		return "text"
	}
	return "other"
}

// Classifier decides the MIME category of a file. Implementations must not
// fail: anything they cannot decide is MimeOther.
type Classifier interface {
	Classify(path string) MimeCategory
}

// DefaultMimeCommand asks file(1) for the bare media type.
var DefaultMimeCommand = []string{"file", "--mime-type", "-b"}

// commandOutput is swapped in tests.
var commandOutput = func(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// CommandClassifier classifies files by running an external MIME query
// with the path appended. Base names matching one of TextPatterns are text
// without running anything.
type CommandClassifier struct {
	Command      []string
	TextPatterns []glob.Glob
}

// NewCommandClassifier compiles the glob patterns. Invalid patterns are
// returned as an error.
func NewCommandClassifier(command []string, textPatterns []string) (*CommandClassifier, error) {
	c := &CommandClassifier{Command: command}
	for _, pattern := range textPatterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid text pattern %q: %w", pattern, err)
		}
		c.TextPatterns = append(c.TextPatterns, g)
	}
	return c, nil
}

func (c *CommandClassifier) Classify(path string) MimeCategory {
	base := filepath.Base(path)
	for _, g := range c.TextPatterns {
		if g.Match(base) {
			return MimeText
		}
	}

	command := c.Command
	if len(command) == 0 {
		command = DefaultMimeCommand
	}
	args := append(append([]string{}, command[1:]...), path)
	out, err := commandOutput(command[0], args...)
	if err != nil {
		return MimeOther
	}
	return CategoryOf(string(out))
}

// CategoryOf maps a media type string such as "text/x-go; charset=utf-8"
// onto a MimeCategory.
func CategoryOf(mediaType string) MimeCategory {
	mediaType = strings.TrimSpace(mediaType)
	if mediaType == "" {
		return MimeOther
	}
	parsed, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		return MimeOther
	}
	if strings.HasPrefix(parsed, "text/") {
		return MimeText
	}
	return MimeOther
}
