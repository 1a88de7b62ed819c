package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// New builds the program logger. The terminal belongs to the UI, so entries
// go to file; when file cannot be opened they are discarded and the
// returned error says why. The closer releases the file.
func New(file, level string) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	logger.SetOutput(io.Discard)

	parsed, levelErr := logrus.ParseLevel(level)
	if levelErr != nil {
		parsed = logrus.InfoLevel
		levelErr = fmt.Errorf("log level %q: %w", level, levelErr)
	}
	logger.SetLevel(parsed)

	if file == "" {
		return logger, nopCloser{}, levelErr
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return logger, nopCloser{}, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return logger, nopCloser{}, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(f)
	return logger, f, levelErr
}

// Discard is a logger that drops everything, for tests and fallbacks.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
