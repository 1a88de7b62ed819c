package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	apppkg "github.com/kk-code-lab/rfz/internal/app"
	"github.com/kk-code-lab/rfz/internal/config"
	"github.com/kk-code-lab/rfz/internal/logging"
)

// runApp is swapped in tests so the command can run without a terminal.
var runApp = func(cfg *config.Config, log logrus.FieldLogger) error {
	app, err := apppkg.NewApplication(cfg, log)
	if err != nil {
		return fmt.Errorf("initializing application: %w", err)
	}
	app.Run()
	return nil
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rfz",
		Short: "Browse directories from the terminal",
		Long: `rfz lists the current directory beside a preview of the selected entry.
Type lowercase letters to filter, Enter or Right to open, Left to go up,
Space to highlight, Esc to clear the filter and Q or Ctrl-C to quit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			log, closer := openLog(cfg, cmd.ErrOrStderr())
			defer func() {
				_ = closer.Close()
			}()

			return runApp(cfg, log)
		},
	}
}

// openLog never fails: a broken log setting is reported once on stderr and
// the program runs with whatever logger could be built.
func openLog(cfg *config.Config, stderr io.Writer) (*logrus.Logger, io.Closer) {
	log, closer, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: %v\n", err)
	}
	return log, closer
}
