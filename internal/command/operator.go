package command

import (
	"fmt"

	"github.com/dshills/modalcore/internal/config/option"
	"github.com/dshills/modalcore/internal/editor"
	"github.com/dshills/modalcore/internal/engine/buffer"
	"github.com/dshills/modalcore/internal/engine/cursor"
	"github.com/dshills/modalcore/internal/input/key"
	"github.com/dshills/modalcore/internal/input/state"
)

// TextObject computes the region an operator acts on. Motions and text
// objects both implement it.
type TextObject interface {
	// Region returns the covered range. count is forwarded from the user.
	Region(ed editor.Adaptor, count int) (buffer.TextRange, error)

	// ContentType returns how the region should be interpreted.
	ContentType(opts option.Reader) cursor.ContentType
}

// Mover is a motion that can move the caret.
type Mover interface {
	// Target returns where the caret lands.
	Target(ed editor.Adaptor, count int) (buffer.Position, error)
}

// Operator acts on a region.
type Operator interface {
	Operate(ed editor.Adaptor, count int, r buffer.TextRange, ct cursor.ContentType) error
}

type operatorCommand struct {
	op  Operator
	obj TextObject
}

// Compose creates the command applying op to the region of obj.
func Compose(op Operator, obj TextObject) Command {
	return operatorCommand{op: op, obj: obj}
}

func (c operatorCommand) Execute(ed editor.Adaptor, count int) error {
	r, err := c.obj.Region(ed, count)
	if err != nil {
		return &ExecutionError{Step: 0, Op: describe(c.obj), Err: motionFailed(err)}
	}
	ct := c.obj.ContentType(ed.Configuration())
	if err := c.op.Operate(ed, NoCount, r, ct); err != nil {
		return &ExecutionError{Step: 1, Op: describe(c.op), Err: err}
	}
	return nil
}

func (c operatorCommand) Repeatable() bool { return true }

func (c operatorCommand) String() string {
	return describe(c.op) + "(" + describe(c.obj) + ")"
}

// OperatorCmds binds k to the cross product of op with every motion.
func OperatorCmds(k key.Stroke, op Operator, motions *state.State[TextObject]) state.Binding[Command] {
	return state.TransitionTo(k, state.Map(motions, func(obj TextObject) Command {
		return Compose(op, obj)
	}))
}

// PrefixedOperatorCmds binds prefix followed by k to the cross product of
// op with every motion, as in "gu" or "gU".
func PrefixedOperatorCmds(prefix, k key.Stroke, op Operator, motions *state.State[TextObject]) state.Binding[Command] {
	return state.Transition(prefix, OperatorCmds(k, op, motions))
}

type onSelection struct {
	cmd Command
}

// OnSelection adapts a command acting on the active selection into an
// Operator. The region becomes the selection before cmd runs.
func OnSelection(cmd Command) Operator {
	return onSelection{cmd: cmd}
}

func (o onSelection) Operate(ed editor.Adaptor, count int, r buffer.TextRange, _ cursor.ContentType) error {
	ed.SetSelection(cursor.ExclusiveSelection(r))
	return o.cmd.Execute(ed, count)
}

func (o onSelection) String() string { return Describe(o.cmd) }

// OperatorFunc adapts a function into an Operator.
type OperatorFunc func(ed editor.Adaptor, count int, r buffer.TextRange, ct cursor.ContentType) error

// Operate implements Operator.
func (f OperatorFunc) Operate(ed editor.Adaptor, count int, r buffer.TextRange, ct cursor.ContentType) error {
	return f(ed, count, r, ct)
}

// MoveCaret creates a normal-mode command moving the caret to m's target.
// The caret never rests on a line break.
func MoveCaret(m Mover) Command {
	return Func{
		Name: "move(" + describe(m) + ")",
		Fn: func(ed editor.Adaptor, count int) error {
			p, err := m.Target(ed, count)
			if err != nil {
				return &ExecutionError{Op: describe(m), Err: motionFailed(err)}
			}
			ed.SetPosition(ed.ShiftPosition(p, 0, false), false)
			return nil
		},
	}
}

func motionFailed(err error) error {
	return fmt.Errorf("%w: %w", ErrMotionFailed, err)
}

func describe(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", v)
}
