package state

// Action is the base interface for all controller inputs.
type Action interface{}

// ===== CURSOR ACTIONS =====

type CursorDownAction struct{}
type CursorUpAction struct{}

// ===== NAVIGATION ACTIONS =====

type GoUpAction struct{}
type OpenAction struct{}
type RefreshAction struct{}

// ===== FILTER ACTIONS =====

// FilterCharAction carries one typed character. Uppercase characters are
// never fed to the filter.
type FilterCharAction struct {
	Char rune
}
type FilterBackspaceAction struct{}
type FilterResetAction struct{}

// ===== SELECTION ACTIONS =====

type ToggleHighlightAction struct{}

// ===== APPLICATION ACTIONS =====

// RenderAction redraws everything without changing state (resize, resume).
type RenderAction struct{}
type QuitAction struct{}

// SuspendAction hands the terminal back to the shell. It is handled by the
// application, never by the Controller.
type SuspendAction struct{}
