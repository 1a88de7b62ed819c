package app

import (
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/rfz/internal/state"
)

// Run draws the first frame and processes terminal events until a quit
// action arrives. The screen is finalized on return.
func (app *Application) Run() {
	defer app.screen.Fini()

	app.controller.Render()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit {
		select {
		case ev := <-eventChan:
			app.handleEvent(ev)
		case action := <-app.actionCh:
			app.handleAction(action)
		case <-sigContCh:
			app.resumeAfterStop()
		}

		app.processActions()
	}
	app.log.Info("browser stopped")
}

func (app *Application) handleEvent(ev tcell.Event) {
	switch ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	}
}

func (app *Application) processActions() {
	for !app.shouldQuit {
		select {
		case action := <-app.actionCh:
			app.handleAction(action)
		default:
			return
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) {
	switch action.(type) {
	case nil:
		return
	case statepkg.QuitAction:
		app.shouldQuit = true
	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
	case statepkg.RenderAction:
		app.views.Resize()
		app.controller.Handle(action)
		app.screen.Sync()
	default:
		if !app.controller.Handle(action) {
			app.shouldQuit = true
		}
	}
}
