package vim

import (
	"github.com/dshills/modalcore/internal/command"
	"github.com/dshills/modalcore/internal/editor"
	"github.com/dshills/modalcore/internal/input/key"
	"github.com/dshills/modalcore/internal/input/macro"
	"github.com/dshills/modalcore/internal/input/mode"
	"github.com/dshills/modalcore/internal/input/state"
)

// ProviderName identifies the base grammar in registries.
const ProviderName = "vim"

// Simple normal-mode commands.
var (
	// DeleteChar deletes count characters under the caret (x).
	DeleteChar = command.Compose(&OpDelete, &MotionRight)

	// DeleteToLineEnd deletes to the end of the line (D).
	DeleteToLineEnd = command.Compose(&OpDelete, &MotionLineEnd)

	// EnterInsert switches to insert mode at the caret (i). Dot-repeat
	// replays it with the text typed before leaving insert mode.
	EnterInsert = command.Func{
		Name:   "insert",
		Repeat: true,
		Fn: func(ed editor.Adaptor, _ int) error {
			return ed.ChangeMode(mode.ModeInsert)
		},
	}

	// AppendInsert switches to insert mode after the caret (a).
	AppendInsert = command.Func{
		Name:   "append",
		Repeat: true,
		Fn: func(ed editor.Adaptor, _ int) error {
			if err := ed.ChangeMode(mode.ModeInsert); err != nil {
				return err
			}
			p := ed.Position()
			if r, ok := ed.CharAt(p.ModelOffset()); ok && r != '\n' {
				ed.SetPosition(ed.ShiftPosition(p, 1, true), false)
			}
			return nil
		},
	}

	// LeaveInsert returns to normal mode and steps the caret back.
	LeaveInsert = command.Seq(
		command.SwitchMode(mode.ModeNormal),
		command.WithoutCount(command.MoveCaret(&MotionLeft)),
	)
)

// MotionTrie returns every motion and text object keyed by its sequence.
// Text objects sit under the "i" and "a" prefixes.
func MotionTrie() *state.State[command.TextObject] {
	var decls []state.Declaration[command.TextObject]
	for _, m := range Motions() {
		decls = append(decls, state.Declare[command.TextObject](key.Runes(m.Keys), m))
	}
	for _, o := range TextObjects() {
		decls = append(decls,
			state.Declare(key.Sequence{key.Rune('i'), key.Rune(o.Key)}, o.Inner()),
			state.Declare(key.Sequence{key.Rune('a'), key.Rune(o.Key)}, o.Around()),
		)
	}
	return state.Build(decls)
}

// OperatorBinding binds op's keys to op applied to every motion in motions.
// Repeating the operator's last key ("dd", "gUU") acts on whole lines.
func OperatorBinding(op *Operator, motions *state.State[command.TextObject]) state.Binding[command.Command] {
	keys := key.Runes(op.Keys)
	last := keys[len(keys)-1]
	withLines := state.Union(motions, state.New(state.Leaf(last, Lines)))
	if len(keys) == 1 {
		return command.OperatorCmds(last, op, withLines)
	}
	return command.PrefixedOperatorCmds(keys[0], last, op, withLines)
}

// NormalMode returns the normal-mode bindings.
func NormalMode() *state.State[command.Command] {
	motions := MotionTrie()

	var decls []state.Declaration[command.Command]
	for _, m := range Motions() {
		decls = append(decls, state.Declare(key.Runes(m.Keys), command.MoveCaret(m)))
	}
	decls = append(decls,
		state.Declare(key.Runes("x"), DeleteChar),
		state.Declare(key.Runes("D"), DeleteToLineEnd),
		state.Declare[command.Command](key.Runes("i"), EnterInsert),
		state.Declare[command.Command](key.Runes("a"), AppendInsert),
		state.Declare(key.Runes("v"), command.EnterVisual),
		state.Declare(key.Runes("gv"), command.Reselect),
		state.Declare(key.Runes("."), command.Repeat),
	)

	bindings := make([]state.Binding[command.Command], 0, len(Operators()))
	for _, op := range Operators() {
		bindings = append(bindings, OperatorBinding(op, motions))
	}
	return state.Union(state.Build(decls), macro.Bindings(), state.New(bindings...))
}

// VisualMode returns the visual-mode bindings.
func VisualMode() *state.State[command.Command] {
	var decls []state.Declaration[command.Command]
	for _, m := range Motions() {
		decls = append(decls, state.Declare(key.Runes(m.Keys), command.ExtendSelection(m)))
	}
	for _, o := range TextObjects() {
		decls = append(decls,
			state.Declare(key.Sequence{key.Rune('i'), key.Rune(o.Key)}, command.SelectObject(o.Inner())),
			state.Declare(key.Sequence{key.Rune('a'), key.Rune(o.Key)}, command.SelectObject(o.Around())),
		)
	}
	for _, op := range Operators() {
		decls = append(decls, state.Declare(key.Runes(op.Keys), op.OnVisual()))
	}
	decls = append(decls,
		state.Declare(key.Runes("x"), OpDelete.OnVisual()),
		state.Declare(key.Runes("u"), OpToLower.OnVisual()),
		state.Declare(key.Runes("U"), OpToUpper.OnVisual()),
		state.Declare(key.Runes("~"), OpToggleCase.OnVisual()),
		state.Declare(key.Runes("v"), command.LeaveVisual),
		state.Declare(key.Sequence{key.Escape}, command.LeaveVisual),
	)
	return state.Build(decls)
}

// InsertMode returns the insert-mode bindings. Only Escape is bound; the
// host types every other key.
func InsertMode() *state.State[command.Command] {
	return state.New(state.Leaf(key.Escape, LeaveInsert))
}

// Provider returns the base grammar for the normal, visual and insert modes.
func Provider() *mode.StaticProvider {
	p := mode.NewProvider(ProviderName)
	p.Tries[mode.ModeNormal] = NormalMode()
	p.Tries[mode.ModeVisual] = VisualMode()
	p.Tries[mode.ModeInsert] = InsertMode()
	return p
}
