package engine

import "errors"

// Errors returned by document actions.
var (
	// ErrNoSelection indicates an operator action ran without a selection.
	ErrNoSelection = errors.New("engine: action requires a selection")

	// ErrDuplicateAction indicates an action ID was registered twice.
	ErrDuplicateAction = errors.New("engine: action already registered")
)
