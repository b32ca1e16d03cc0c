package command

import (
	"fmt"
	"strings"

	"github.com/dshills/modalcore/internal/editor"
)

// NoCount is the count passed when the user typed none.
const NoCount = 0

// MaxRepeat bounds how often a count repeats a step whose progress the core
// cannot observe, such as a host action.
const MaxRepeat = 10000

// Command is an executable editing command.
type Command interface {
	// Execute runs the command. count is NoCount when none was typed.
	Execute(ed editor.Adaptor, count int) error

	// Repeatable reports whether dot-repeat may replay the command.
	Repeatable() bool
}

// Describe returns a display name for cmd.
func Describe(cmd Command) string {
	if cmd == nil {
		return "<nil>"
	}
	if s, ok := cmd.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", cmd)
}

// Effective returns count, or 1 when no count was typed.
func Effective(count int) int {
	if count <= NoCount {
		return 1
	}
	return count
}

// Func adapts a function into a command.
type Func struct {
	Name   string
	Fn     func(ed editor.Adaptor, count int) error
	Repeat bool
}

// Execute implements Command.
func (f Func) Execute(ed editor.Adaptor, count int) error {
	return f.Fn(ed, count)
}

// Repeatable implements Command.
func (f Func) Repeatable() bool { return f.Repeat }

// String returns the function name.
func (f Func) String() string { return f.Name }

type seqCommand struct {
	cmds []Command
}

// Seq creates a command running cmds in order with the same count.
// Execution stops at the first failure, which is returned as an
// *ExecutionError naming the failing step.
func Seq(cmds ...Command) Command {
	flat := make([]Command, 0, len(cmds))
	for _, c := range cmds {
		if c != nil {
			flat = append(flat, c)
		}
	}
	return seqCommand{cmds: flat}
}

func (s seqCommand) Execute(ed editor.Adaptor, count int) error {
	for i, c := range s.cmds {
		if err := c.Execute(ed, count); err != nil {
			return &ExecutionError{Step: i, Op: Describe(c), Err: err}
		}
	}
	return nil
}

func (s seqCommand) Repeatable() bool {
	for _, c := range s.cmds {
		if c.Repeatable() {
			return true
		}
	}
	return false
}

func (s seqCommand) String() string {
	names := make([]string, len(s.cmds))
	for i, c := range s.cmds {
		names[i] = Describe(c)
	}
	return "seq(" + strings.Join(names, ", ") + ")"
}

type dontRepeat struct {
	cmd Command
}

// DontRepeat wraps cmd so that dot-repeat never replays it.
func DontRepeat(cmd Command) Command {
	return dontRepeat{cmd: cmd}
}

func (d dontRepeat) Execute(ed editor.Adaptor, count int) error {
	return d.cmd.Execute(ed, count)
}

func (d dontRepeat) Repeatable() bool { return false }

func (d dontRepeat) String() string { return "dontRepeat(" + Describe(d.cmd) + ")" }

type withoutCount struct {
	cmd Command
}

// WithoutCount wraps cmd so that it always runs with NoCount. Repeatability
// is unchanged.
func WithoutCount(cmd Command) Command {
	return withoutCount{cmd: cmd}
}

func (w withoutCount) Execute(ed editor.Adaptor, _ int) error {
	return w.cmd.Execute(ed, NoCount)
}

func (w withoutCount) Repeatable() bool { return w.cmd.Repeatable() }

func (w withoutCount) String() string { return Describe(w.cmd) }

type countIgnoring struct {
	name string
	fn   func(ed editor.Adaptor) error
}

// CountIgnoring creates a command that discards its count.
// Count-ignoring commands are never repeatable.
func CountIgnoring(name string, fn func(ed editor.Adaptor) error) Command {
	return countIgnoring{name: name, fn: fn}
}

func (c countIgnoring) Execute(ed editor.Adaptor, _ int) error {
	return c.fn(ed)
}

func (c countIgnoring) Repeatable() bool { return false }

func (c countIgnoring) String() string { return c.name }

type hostAction struct {
	id string
}

// HostAction creates a command dispatching a host action, once per count up
// to MaxRepeat.
func HostAction(id string) Command {
	return hostAction{id: id}
}

func (h hostAction) Execute(ed editor.Adaptor, count int) error {
	n := min(Effective(count), MaxRepeat)
	for i := 0; i < n; i++ {
		if err := ed.Actions().Dispatch(h.id); err != nil {
			return &ExecutionError{Step: i, Op: h.id, Err: err}
		}
	}
	return nil
}

func (h hostAction) Repeatable() bool { return true }

func (h hostAction) String() string { return h.id }

// ActionID returns the host action dispatched by cmd, if it is a plain
// host action.
func ActionID(cmd Command) (string, bool) {
	h, ok := cmd.(hostAction)
	return h.id, ok
}

type repeatMarker struct{}

func (repeatMarker) Execute(editor.Adaptor, int) error { return nil }
func (repeatMarker) Repeatable() bool                  { return false }
func (repeatMarker) String() string                    { return "repeat" }

// Repeat marks the dot-repeat binding. Sessions replace it with the last
// repeatable command; executing it directly does nothing.
var Repeat Command = repeatMarker{}

// IsRepeat reports whether cmd is the dot-repeat marker.
func IsRepeat(cmd Command) bool {
	_, ok := cmd.(repeatMarker)
	return ok
}

// SwitchMode creates a command that changes the editor mode.
func SwitchMode(name string) Command {
	return CountIgnoring("mode("+name+")", func(ed editor.Adaptor) error {
		return ed.ChangeMode(name)
	})
}
