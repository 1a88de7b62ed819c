package app

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/kk-code-lab/rfz/internal/config"
	fsutil "github.com/kk-code-lab/rfz/internal/fs"
	"github.com/kk-code-lab/rfz/internal/logging"
	statepkg "github.com/kk-code-lab/rfz/internal/state"
	inputui "github.com/kk-code-lab/rfz/internal/ui/input"
	renderui "github.com/kk-code-lab/rfz/internal/ui/render"
)

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	views      *renderui.Views
	controller *statepkg.Controller
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	log        logrus.FieldLogger
	shouldQuit bool
}

// NewApplication opens the terminal and builds the browser rooted at the
// working directory. Only terminal and configuration failures are fatal.
func NewApplication(cfg *config.Config, log logrus.FieldLogger) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	cwd, err := GetCwd()
	if err != nil {
		screen.Fini()
		return nil, err
	}

	app, err := newApplication(screen, cfg, log, cwd)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return app, nil
}

func newApplication(screen tcell.Screen, cfg *config.Config, log logrus.FieldLogger, cwd string) (*Application, error) {
	if log == nil {
		log = logging.Discard()
	}

	classifier, err := fsutil.NewCommandClassifier(cfg.MimeCommandArgs(), cfg.TextPatterns)
	if err != nil {
		return nil, err
	}
	model := fsutil.NewModel(cwd, fsutil.WithClassifier(classifier))

	views := renderui.NewViews(screen, renderui.GetColorTheme(), renderui.NewHighlighter(cfg.Preview.SyntaxStyle))
	controller := statepkg.NewController(model, views.Display(),
		statepkg.WithLauncher(NewLauncher(screen, cfg, log)),
		statepkg.WithPreviewLimit(cfg.Preview.MaxBytes),
		statepkg.WithLogger(log),
	)

	actionCh := make(chan statepkg.Action, 10)
	app := &Application{
		screen:     screen,
		views:      views,
		controller: controller,
		input:      inputui.NewInputHandler(actionCh),
		actionCh:   actionCh,
		log:        log.WithField("component", "app"),
	}
	app.log.WithField("path", model.Path()).Info("browser started")
	return app, nil
}

// CurrentPath returns the directory being browsed.
func (app *Application) CurrentPath() string {
	return app.controller.Model().Path()
}

// GetCwd returns current working directory.
func GetCwd() (string, error) {
	return os.Getwd()
}
