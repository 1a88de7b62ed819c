package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/rfz/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan<- statepkg.Action
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan<- statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// ProcessEvent converts a tcell event into an Action. It returns false once
// the event asked the program to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		ih.actionChan <- statepkg.RenderAction{}
		return true
	default:
		return true
	}
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		ih.actionChan <- statepkg.QuitAction{}
		return false

	case tcell.KeyCtrlZ:
		ih.actionChan <- statepkg.SuspendAction{}
		return true

	case tcell.KeyCtrlR:
		ih.actionChan <- statepkg.RefreshAction{}
		return true

	case tcell.KeyEscape:
		ih.actionChan <- statepkg.FilterResetAction{}
		return true

	case tcell.KeyDown:
		ih.actionChan <- statepkg.CursorDownAction{}
		return true

	case tcell.KeyUp:
		ih.actionChan <- statepkg.CursorUpAction{}
		return true

	case tcell.KeyLeft:
		ih.actionChan <- statepkg.GoUpAction{}
		return true

	case tcell.KeyRight, tcell.KeyEnter:
		ih.actionChan <- statepkg.OpenAction{}
		return true

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.FilterBackspaceAction{}
		return true

	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModShift != 0 {
			// Normalize shifted alphabetic runes to reflect user intent (Shift+j => 'J')
			r = unicode.ToUpper(r)
		}
		return ih.processRune(r)

	default:
		return true
	}
}

// processRune maps the uppercase command letters and space; every other
// rune goes to the filter, which decides what it accepts.
func (ih *InputHandler) processRune(r rune) bool {
	switch r {
	case 'Q':
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case 'J':
		ih.actionChan <- statepkg.CursorDownAction{}
	case 'K':
		ih.actionChan <- statepkg.CursorUpAction{}
	case 'H':
		ih.actionChan <- statepkg.GoUpAction{}
	case 'L':
		ih.actionChan <- statepkg.OpenAction{}
	case ' ':
		ih.actionChan <- statepkg.ToggleHighlightAction{}
	default:
		ih.actionChan <- statepkg.FilterCharAction{Char: r}
	}
	return true
}
