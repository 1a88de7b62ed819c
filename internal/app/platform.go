package app

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode"
)

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// parseEditorCommand splits an editor setting such as
// `code --wait` or `"/opt/My Editor/bin/ed" -n` into argv. Single and double
// quotes group words; a leading ~ in the program is expanded.
func parseEditorCommand(cmd string) []string {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return nil
	}

	var args []string
	var current strings.Builder
	inSingle := false
	inDouble := false

	for _, r := range cmd {
		switch {
		case r == '\'' && !inDouble:
			inSingle = !inSingle
		case r == '"' && !inSingle:
			inDouble = !inDouble
		case !inSingle && !inDouble && unicode.IsSpace(r):
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		args = append(args, current.String())
	}

	if len(args) > 0 {
		args[0] = expandUserPath(args[0])
	}

	return args
}

func expandUserPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	if len(path) == 1 {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return path
	}

	sep := path[1]
	if sep != '/' && sep != '\\' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[2:])
}

func resolveExecutable(cmd string, lookup func(string) (string, error)) (string, bool) {
	if cmd == "" {
		return "", false
	}

	path, err := lookup(expandUserPath(cmd))
	if err != nil {
		return "", false
	}
	return path, true
}
