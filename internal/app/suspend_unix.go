//go:build !windows

package app

import (
	"os"
	"syscall"
)

func contSignals() []os.Signal {
	return []os.Signal{syscall.SIGCONT}
}

func (app *Application) suspendToShell() {
	// Return terminal control to the shell before stopping the process.
	_ = app.screen.Suspend()
	// Stop only this process, not the whole group, so job control in the
	// launching shell keeps working.
	_ = syscall.Kill(syscall.Getpid(), syscall.SIGTSTP)
}

func (app *Application) resumeAfterStop() bool {
	if err := app.screen.Resume(); err != nil {
		app.log.WithError(err).Debug("resume after stop")
		return false
	}
	app.screen.Sync()
	app.views.Resize()
	app.controller.Render()
	return true
}
