//go:build windows

package fs

import "errors"

func mkfifo(string) error {
	return errors.New("fifos are not supported")
}
