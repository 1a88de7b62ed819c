//go:build windows

package app

import "golang.org/x/sys/windows"

// flushConsoleInput drops keystrokes typed into the editor's console that
// would otherwise be replayed into the browser.
func flushConsoleInput() error {
	handle, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		return err
	}
	return windows.FlushConsoleInputBuffer(handle)
}
