package fs

import (
	"errors"
	"fmt"
)

// Kind classifies filesystem model failures.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindNotADirectory
	KindTypeUnknown
	KindEntryIsFile
	KindIO
	KindProcessLaunch
	KindConfigMissing
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindNotADirectory:
		return "not a folder"
	case KindTypeUnknown:
		return "unknown type"
	case KindEntryIsFile:
		return "entry is file"
	case KindIO:
		return "i/o failure"
	case KindProcessLaunch:
		return "process launch failed"
	case KindConfigMissing:
		return "configuration missing"
	default:
		return "unknown error"
	}
}

// Sentinels for errors.Is checks. They match any *Error of the same kind.
var (
	ErrNotFound      = &Error{Kind: KindNotFound}
	ErrNotADirectory = &Error{Kind: KindNotADirectory}
	ErrTypeUnknown   = &Error{Kind: KindTypeUnknown}
	ErrEntryIsFile   = &Error{Kind: KindEntryIsFile}
	ErrIO            = &Error{Kind: KindIO}
	ErrProcessLaunch = &Error{Kind: KindProcessLaunch}
	ErrConfigMissing = &Error{Kind: KindConfigMissing}
)

// Error describes a failed model operation.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Kind so callers can compare against the sentinels.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return other.Kind == e.Kind
}

// NewError builds an *Error. Launchers outside this package use it to
// report failures with the same taxonomy.
func NewError(kind Kind, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

// KindOf extracts the Kind of err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
