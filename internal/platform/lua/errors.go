package lua

import (
	"errors"
	"fmt"
)

// Errors for Lua runtime operations.
var (
	// ErrClosed is returned when operating on a closed runtime.
	ErrClosed = errors.New("lua: runtime is closed")

	// ErrTimeout is returned when an action exceeds its time budget.
	ErrTimeout = errors.New("lua: execution timeout")

	// ErrUnknownScriptAction is returned for an action no script defined.
	ErrUnknownScriptAction = errors.New("lua: unknown script action")

	// ErrDuplicateScriptAction is returned when two scripts define one ID.
	ErrDuplicateScriptAction = errors.New("lua: duplicate script action")
)

// ScriptError wraps a Lua error raised while loading or running a script.
type ScriptError struct {
	// Script is the file or chunk name, or the action ID for action calls.
	Script string
	// Err is the underlying Lua error.
	Err error
}

// Error implements the error interface.
func (e *ScriptError) Error() string {
	return fmt.Sprintf("lua: %s: %v", e.Script, e.Err)
}

// Unwrap returns the underlying error.
func (e *ScriptError) Unwrap() error {
	return e.Err
}
