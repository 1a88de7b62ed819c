package fs

import (
	"errors"
	"os"
	"path/filepath"
)

// Model tracks the current directory and a sorted snapshot of its entries.
// The snapshot is replaced wholesale on every directory change or refresh,
// which also drops all highlights.
type Model struct {
	path       string
	contents   []Entry
	classifier Classifier
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithClassifier overrides the MIME classifier used by Open.
func WithClassifier(c Classifier) ModelOption {
	return func(m *Model) {
		if c != nil {
			m.classifier = c
		}
	}
}

// NewModel creates a model rooted at path. An unreadable path yields an
// empty listing rather than an error.
func NewModel(path string, opts ...ModelOption) *Model {
	m := &Model{
		path:       canonicalize(path),
		classifier: &CommandClassifier{},
	}
	for _, opt := range opts {
		opt(m)
	}
	m.contents, _ = ListDirectory(m.path)
	if m.contents == nil {
		m.contents = []Entry{}
	}
	return m
}

// Path returns the canonical current directory.
func (m *Model) Path() string {
	return m.path
}

// Contents returns a copy of the current listing.
func (m *Model) Contents() []Entry {
	out := make([]Entry, len(m.contents))
	copy(out, m.contents)
	return out
}

// Entry looks up a child of the current listing by name.
func (m *Model) Entry(name string) (Entry, bool) {
	if idx := m.indexOf(name); idx >= 0 {
		return m.contents[idx], true
	}
	return Entry{}, false
}

// TypeOf resolves the type of the named child on disk.
func (m *Model) TypeOf(name string) (EntryType, error) {
	childPath := m.childPath(name)
	info, err := os.Stat(childPath)
	if err != nil {
		return 0, statError("type of", childPath, err)
	}
	switch {
	case info.IsDir():
		return Directory, nil
	case info.Mode().IsRegular():
		return File, nil
	default:
		return 0, NewError(KindTypeUnknown, "type of", childPath, nil)
	}
}

// PathOf returns the full path of the named child if it exists.
func (m *Model) PathOf(name string) (string, error) {
	childPath := m.childPath(name)
	if _, err := os.Stat(childPath); err != nil {
		return "", statError("path of", childPath, err)
	}
	return childPath, nil
}

// ChangeDirectory moves into the named child ("..": the parent). On any
// failure the current path and listing are left untouched. A target that
// resolves to the current path, such as ".." at the filesystem root, is a
// successful no-op that keeps highlights.
func (m *Model) ChangeDirectory(name string) error {
	target := m.childPath(name)
	info, err := os.Stat(target)
	if err != nil {
		return statError("change directory", target, err)
	}
	if !info.IsDir() {
		return NewError(KindNotADirectory, "change directory", target, nil)
	}

	target = canonicalize(target)
	if target == m.path {
		// ".." at the root, or "." anywhere: keep listing and highlights.
		return nil
	}
	contents, err := ListDirectory(target)
	if err != nil {
		return err
	}

	m.path = target
	m.contents = contents
	return nil
}

// Refresh re-reads the current directory. On failure the listing becomes
// empty so it never describes a stale state.
func (m *Model) Refresh() error {
	contents, err := ListDirectory(m.path)
	if err != nil {
		m.contents = []Entry{}
		return err
	}
	m.contents = contents
	return nil
}

// ListChildrenOf lists a child directory without changing the current path.
func (m *Model) ListChildrenOf(name string) ([]Entry, error) {
	entryType, err := m.TypeOf(name)
	if err != nil {
		return nil, err
	}
	if entryType == File {
		return nil, NewError(KindEntryIsFile, "list children", m.childPath(name), nil)
	}
	return ListDirectory(m.childPath(name))
}

// ToggleHighlight flips the highlight flag of the named entry and returns
// the updated entry. It reports false when no such entry is listed.
func (m *Model) ToggleHighlight(name string) (Entry, bool) {
	idx := m.indexOf(name)
	if idx < 0 {
		return Entry{}, false
	}
	m.contents[idx].Highlighted = !m.contents[idx].Highlighted
	return m.contents[idx], true
}

// Highlighted returns the highlighted entries in listing order.
func (m *Model) Highlighted() []Entry {
	var out []Entry
	for _, e := range m.contents {
		if e.Highlighted {
			out = append(out, e)
		}
	}
	return out
}

func (m *Model) indexOf(name string) int {
	for i := range m.contents {
		if m.contents[i].Name == name {
			return i
		}
	}
	return -1
}

// childPath joins name to the current path, going through the listed
// entry's on-disk name when name is a listed (normalized) name.
func (m *Model) childPath(name string) string {
	if idx := m.indexOf(name); idx >= 0 {
		return filepath.Join(m.path, m.contents[idx].DiskName())
	}
	return filepath.Join(m.path, name)
}

func statError(op, path string, err error) error {
	if errors.Is(err, os.ErrNotExist) {
		return NewError(KindNotFound, op, path, err)
	}
	return NewError(KindIO, op, path, err)
}

// canonicalize resolves the path to an absolute, symlink-free form. When
// resolution fails the best available form is kept.
func canonicalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return abs
	}
	return resolved
}
