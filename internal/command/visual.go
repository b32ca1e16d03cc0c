package command

import (
	"github.com/dshills/modalcore/internal/config/option"
	"github.com/dshills/modalcore/internal/editor"
	"github.com/dshills/modalcore/internal/engine/buffer"
	"github.com/dshills/modalcore/internal/engine/cursor"
)

// Deselect moves the caret to the caret end of the active selection and
// drops the selection.
var Deselect = CountIgnoring("deselect", func(ed editor.Adaptor) error {
	if sel := ed.Selection(); sel != nil {
		ed.SetPosition(sel.To(), false)
	}
	ed.SetSelection(nil)
	return nil
})

// RememberSelection records the active selection in the '< and '> marks.
var RememberSelection = CountIgnoring("rememberSelection", func(ed editor.Adaptor) error {
	if sel := ed.Selection(); sel != nil {
		ed.Marks().SetMark(buffer.LastSelectionStart, sel.StartMark())
		ed.Marks().SetMark(buffer.LastSelectionEnd, sel.EndMark())
		ed.Marks().SetMark(buffer.LastSelectionCaret, sel.To())
	}
	return nil
})

// LeaveVisual records the selection in the '< and '> marks, drops it and
// returns to normal mode.
var LeaveVisual = CountIgnoring("leaveVisual", func(ed editor.Adaptor) error {
	if err := RememberSelection.Execute(ed, NoCount); err != nil {
		return err
	}
	if err := Deselect.Execute(ed, NoCount); err != nil {
		return err
	}
	return ed.ChangeMode(editor.ModeNormal)
})

// EnterVisual selects the character under the caret and switches to
// visual mode.
var EnterVisual = CountIgnoring("enterVisual", func(ed editor.Adaptor) error {
	p := ed.Position()
	inclusive := option.IsSelectionInclusive(ed.Configuration())
	end := p
	if inclusive {
		end = ed.ShiftPosition(p, 1, true)
	}
	ed.SetSelection(cursor.SelectionFromRange(ed, inclusive, buffer.NewTextRange(p, end)))
	return ed.ChangeMode(editor.ModeVisual)
})

// Reselect restores the last visual selection from the '< and '> marks
// (gv). The selection keeps the direction it had when it was recorded.
var Reselect = CountIgnoring("reselect", func(ed editor.Adaptor) error {
	start, ok := ed.Marks().Mark(buffer.LastSelectionStart)
	if !ok {
		return ErrNoPreviousSelection
	}
	end, ok := ed.Marks().Mark(buffer.LastSelectionEnd)
	if !ok {
		return ErrNoPreviousSelection
	}

	shape := buffer.NewTextRange(start, end)
	if caret, ok := ed.Marks().Mark(buffer.LastSelectionCaret); ok && caret == start && start != end {
		shape = buffer.NewTextRange(end, start)
	}
	sel := cursor.ExclusiveSelection(shape).SelectMarks(ed, start, end)
	ed.SetSelection(sel)
	return ed.ChangeMode(editor.ModeVisual)
})

// ExtendSelection creates a visual-mode command that moves the caret end of
// the selection to m's target, keeping the anchor.
func ExtendSelection(m Mover) Command {
	return Func{
		Name: "extend(" + describe(m) + ")",
		Fn: func(ed editor.Adaptor, count int) error {
			target, err := m.Target(ed, count)
			if err != nil {
				return &ExecutionError{Op: describe(m), Err: motionFailed(err)}
			}
			anchor := ed.Position()
			if sel := ed.Selection(); sel != nil {
				anchor = sel.From()
			}

			inclusive := option.IsSelectionInclusive(ed.Configuration())
			start, end := anchor, target
			if inclusive {
				if target.Before(anchor) {
					start = ed.ShiftPosition(anchor, 1, true)
				} else {
					end = ed.ShiftPosition(target, 1, true)
				}
			}
			ed.SetSelection(cursor.SelectionFromRange(ed, inclusive, buffer.NewTextRange(start, end)))
			return nil
		},
	}
}

// SelectObject creates a visual-mode command that replaces the selection
// with obj's region.
func SelectObject(obj TextObject) Command {
	return Func{
		Name: "select(" + describe(obj) + ")",
		Fn: func(ed editor.Adaptor, count int) error {
			r, err := obj.Region(ed, count)
			if err != nil {
				return &ExecutionError{Op: describe(obj), Err: motionFailed(err)}
			}
			inclusive := option.IsSelectionInclusive(ed.Configuration())
			ed.SetSelection(cursor.SelectionFromRange(ed, inclusive, r))
			return nil
		},
	}
}
