package fs

import (
	"sort"

	"golang.org/x/text/unicode/norm"
)

// EntryType classifies a directory child. Directories order before files.
type EntryType int

const (
	Directory EntryType = iota
	File
)

func (t EntryType) String() string {
	switch t {
	case Directory:
		return "directory"
	case File:
		return "file"
	default:
		return "unknown"
	}
}

// Entry is one classified item of a directory listing. Name is always the
// final path component, never a full path, in NFC form for display and
// matching.
type Entry struct {
	Type        EntryType
	Name        string
	Highlighted bool

	// diskName is the name as stored on disk, set only when it differs
	// from Name (decomposed Unicode on Linux, for example).
	diskName string
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Type == Directory
}

// DiskName is the name used to reach the entry on disk.
func (e Entry) DiskName() string {
	if e.diskName != "" {
		return e.diskName
	}
	return e.Name
}

func newEntry(t EntryType, rawName string) Entry {
	e := Entry{Type: t, Name: norm.NFC.String(rawName)}
	if e.Name != rawName {
		e.diskName = rawName
	}
	return e
}

// SortEntries orders entries by type, then by name (byte order).
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Type != entries[j].Type {
			return entries[i].Type < entries[j].Type
		}
		return entries[i].Name < entries[j].Name
	})
}
