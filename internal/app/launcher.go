package app

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/kk-code-lab/rfz/internal/config"
	fsutil "github.com/kk-code-lab/rfz/internal/fs"
	"github.com/kk-code-lab/rfz/internal/logging"
)

// commandBuilder is swapped in tests.
var commandBuilder = exec.Command

// suspender is the part of tcell.Screen needed to hand the terminal to a
// child process.
type suspender interface {
	Suspend() error
	Resume() error
	Sync()
}

// Launcher starts the editor and the system opener for the controller.
type Launcher struct {
	screen suspender
	cfg    *config.Config
	getenv func(string) string
	log    logrus.FieldLogger
}

// NewLauncher returns a Launcher that suspends screen while the editor runs.
func NewLauncher(screen suspender, cfg *config.Config, log logrus.FieldLogger) *Launcher {
	if log == nil {
		log = logging.Discard()
	}
	return &Launcher{
		screen: screen,
		cfg:    cfg,
		getenv: os.Getenv,
		log:    log.WithField("component", "launcher"),
	}
}

// Edit runs the configured editor on path in the foreground and returns
// once it exits.
func (l *Launcher) Edit(path string) error {
	args := parseEditorCommand(l.cfg.EditorCommand(l.getenv))
	if len(args) == 0 {
		return fsutil.NewError(fsutil.KindConfigMissing, "edit", path,
			fmt.Errorf("no editor configured and $%s is not set", l.cfg.EditorEnv))
	}

	resolved, ok := resolveExecutable(args[0], lookPath)
	if !ok {
		return fsutil.NewError(fsutil.KindProcessLaunch, "edit", path,
			fmt.Errorf("%s: executable not found", args[0]))
	}
	args[0] = resolved
	args = append(args, path)

	l.log.WithField("argv", args).Debug("starting editor")
	if err := l.runInTerminal(args); err != nil {
		return fsutil.NewError(fsutil.KindProcessLaunch, "edit", path, err)
	}
	return nil
}

// OpenDetached hands path to the opener and returns without waiting.
func (l *Launcher) OpenDetached(path string) error {
	opener := l.cfg.OpenerArgs()
	if len(opener) == 0 {
		return fsutil.NewError(fsutil.KindConfigMissing, "open", path, errors.New("no opener configured"))
	}

	args := append(append([]string(nil), opener[1:]...), path)
	cmd := commandBuilder(opener[0], args...)
	detach(cmd)
	if err := cmd.Start(); err != nil {
		return fsutil.NewError(fsutil.KindProcessLaunch, "open", path, fmt.Errorf("%s: %w", opener[0], err))
	}

	log := l.log.WithField("path", path)
	log.WithField("pid", cmd.Process.Pid).Debug("opener started")
	go func() {
		if err := cmd.Wait(); err != nil {
			log.WithError(err).Warn("opener exited with error")
		}
	}()
	return nil
}

func (l *Launcher) runInTerminal(args []string) (err error) {
	stdin, stdout, stderr := os.Stdin, os.Stdout, os.Stderr
	if runtime.GOOS != "windows" {
		tty, ttyErr := os.OpenFile("/dev/tty", os.O_RDWR, 0)
		if ttyErr == nil {
			defer func() {
				_ = tty.Close()
			}()
			stdin, stdout, stderr = tty, tty, tty
		} else {
			l.log.WithError(ttyErr).Debug("no controlling terminal, using stdio")
		}
	}

	if err := l.screen.Suspend(); err != nil {
		return fmt.Errorf("failed to suspend screen: %w", err)
	}
	defer func() {
		if resumeErr := l.screen.Resume(); resumeErr != nil && err == nil {
			err = fmt.Errorf("failed to resume screen: %w", resumeErr)
		}
		l.screen.Sync()
		if flushErr := flushConsoleInput(); flushErr != nil {
			l.log.WithError(flushErr).Debug("flush console input")
		}
	}()

	cmd := commandBuilder(args[0], args[1:]...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return nil
}
