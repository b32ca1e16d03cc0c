package platform

import (
	"fmt"

	"github.com/dshills/modalcore/internal/command"
	"github.com/dshills/modalcore/internal/input/key"
	"github.com/dshills/modalcore/internal/input/mode"
	"github.com/dshills/modalcore/internal/input/state"
	"github.com/dshills/modalcore/internal/input/vim"
)

// Declaration is one extension file.
type Declaration struct {
	// Name identifies the provider in registries and conflict reports.
	Name string `toml:"name" yaml:"name"`

	// Description documents the extension.
	Description string `toml:"description" yaml:"description"`

	// Bindings are applied in order; later bindings win.
	Bindings []Binding `toml:"bindings" yaml:"bindings"`

	// Source is the file the declaration was read from.
	Source string `toml:"-" yaml:"-"`
}

// Binding maps a key sequence to a host action.
type Binding struct {
	// Mode is the mode the binding lives in, e.g. "normal".
	Mode string `toml:"mode" yaml:"mode"`

	// Keys is the key sequence. Formats: "gc", "<C-f>", "z o".
	Keys string `toml:"keys" yaml:"keys"`

	// Action is the host action ID dispatched by the binding.
	Action string `toml:"action" yaml:"action"`

	// Operator makes Keys (one or two keys) an operator over the base
	// grammar's motions and text objects.
	Operator bool `toml:"operator" yaml:"operator"`

	// Deselect drops the selection after the action (normal mode).
	Deselect bool `toml:"deselect" yaml:"deselect"`

	// LeaveVisual returns to normal mode after the action (visual mode).
	LeaveVisual bool `toml:"leave_visual" yaml:"leave_visual"`

	// Repeat controls dot-repeat. Defaults to true outside visual mode.
	Repeat *bool `toml:"repeat" yaml:"repeat"`

	// Count controls whether a count prefix repeats the action. Defaults
	// to true outside visual mode.
	Count *bool `toml:"count" yaml:"count"`

	// Description documents the binding.
	Description string `toml:"description" yaml:"description"`
}

// Validate checks that every binding can be built.
func (d *Declaration) Validate() error {
	if d.Name == "" {
		return ErrNoName
	}
	for i, b := range d.Bindings {
		if err := b.validate(); err != nil {
			return fmt.Errorf("%s: binding %d (%s): %w", d.Name, i, b.Keys, err)
		}
	}
	return nil
}

func (b Binding) validate() error {
	if b.Mode == "" {
		return fmt.Errorf("%w: empty mode", ErrInvalidBinding)
	}
	if b.Action == "" {
		return fmt.Errorf("%w: empty action", ErrInvalidBinding)
	}
	seq, err := key.ParseSequence(b.Keys)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBinding, err)
	}
	if b.Operator {
		if b.Mode == mode.ModeVisual {
			return fmt.Errorf("%w: operators are not bound in visual mode", ErrInvalidBinding)
		}
		if len(seq) > 2 {
			return fmt.Errorf("%w: operator keys must be one or two keys", ErrInvalidBinding)
		}
	}
	if b.LeaveVisual && b.Mode != mode.ModeVisual {
		return fmt.Errorf("%w: leave_visual outside visual mode", ErrInvalidBinding)
	}
	return nil
}

// Provider builds the mode provider for the declaration. Operator bindings
// range over objects.
func (d *Declaration) Provider(objects *state.State[command.TextObject]) (*mode.StaticProvider, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	p := mode.NewProvider(d.Name)
	for _, b := range d.Bindings {
		seq, _ := key.ParseSequence(b.Keys)
		if b.Operator {
			p.Add(b.Mode, b.operatorBinding(seq, objects))
			continue
		}
		p.Declare(b.Mode, seq, b.Command())
	}
	return p, nil
}

// Command returns the command bound by a non-operator binding.
func (b Binding) Command() command.Command {
	action := command.HostAction(b.Action)
	if b.Mode == mode.ModeVisual {
		var cmd command.Command = action
		if b.LeaveVisual {
			cmd = command.Seq(command.RememberSelection, action, command.LeaveVisual)
		}
		return command.DontRepeat(command.WithoutCount(cmd))
	}

	var cmd command.Command = action
	if b.Deselect {
		cmd = command.Seq(action, command.Deselect)
	}
	if b.Count != nil && !*b.Count {
		cmd = command.WithoutCount(cmd)
	}
	if b.Repeat != nil && !*b.Repeat {
		cmd = command.DontRepeat(cmd)
	}
	return cmd
}

func (b Binding) operatorBinding(seq key.Sequence, objects *state.State[command.TextObject]) state.Binding[command.Command] {
	var cmd command.Command = command.HostAction(b.Action)
	if b.Deselect {
		cmd = command.Seq(cmd, command.Deselect)
	}
	op := command.OnSelection(cmd)
	last := seq[len(seq)-1]
	withLines := state.Union(objects, state.New(state.Leaf(last, vim.Lines)))
	if len(seq) == 1 {
		return command.OperatorCmds(last, op, withLines)
	}
	return command.PrefixedOperatorCmds(seq[0], last, op, withLines)
}
