package command

import (
	"errors"
	"fmt"
)

// Command errors.
var (
	// ErrMotionFailed indicates a motion or text object could not compute
	// its range.
	ErrMotionFailed = errors.New("command: motion failed")

	// ErrNoSelection indicates a command that needs a selection ran without one.
	ErrNoSelection = errors.New("command: no active selection")

	// ErrNoPreviousSelection indicates gv ran before any visual selection
	// was recorded.
	ErrNoPreviousSelection = errors.New("command: no previous selection")
)

// ExecutionError reports which step of a command failed.
type ExecutionError struct {
	// Step is the zero-based index of the failing step.
	Step int

	// Op describes the failing step.
	Op string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	return fmt.Sprintf("command: step %d (%s): %v", e.Step, e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *ExecutionError) Unwrap() error {
	return e.Err
}
