package fs

import (
	"os"
	"path/filepath"
)

// ListDirectory reads the direct children of path. Each child is classified
// by its resolved metadata, so a symlink to a directory lists as a
// directory. Children that resolve to neither a regular file nor a directory
// (broken links, sockets, devices) are skipped. Only a failure to read path
// itself is reported.
func ListDirectory(path string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, NewError(KindIO, "list directory", path, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		rawName := de.Name()
		fullPath := filepath.Join(path, rawName)
		if omitFromListing(fullPath, rawName) {
			continue
		}

		entryType, ok := resolveType(fullPath)
		if !ok {
			continue
		}

		entries = append(entries, newEntry(entryType, rawName))
	}

	SortEntries(entries)
	return entries, nil
}

// resolveType follows symlinks and classifies the target.
func resolveType(fullPath string) (EntryType, bool) {
	info, err := os.Stat(fullPath)
	if err != nil {
		return 0, false
	}
	switch {
	case info.IsDir():
		return Directory, true
	case info.Mode().IsRegular():
		return File, true
	default:
		return 0, false
	}
}
