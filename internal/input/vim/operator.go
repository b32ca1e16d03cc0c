package vim

import (
	"github.com/dshills/modalcore/internal/command"
	"github.com/dshills/modalcore/internal/config/option"
	"github.com/dshills/modalcore/internal/editor"
	"github.com/dshills/modalcore/internal/engine/buffer"
	"github.com/dshills/modalcore/internal/engine/cursor"
)

// Operator represents a Vim operator command.
// Operators are commands that perform an action on a range of text
// defined by a motion or text object.
type Operator struct {
	// Name is the operator identifier (e.g., "delete", "change", "yank").
	Name string

	// Keys is the key sequence that triggers this operator (e.g., "d", "gU").
	Keys string

	// Action is the host action to dispatch (e.g., "editor.delete").
	Action string

	// ChangesText indicates if this operator modifies the buffer.
	ChangesText bool

	// EntersInsert indicates if this operator enters insert mode after.
	EntersInsert bool
}

// Standard Vim operators.
var (
	// OpDelete deletes text.
	OpDelete = Operator{
		Name:        "delete",
		Keys:        "d",
		Action:      "editor.delete",
		ChangesText: true,
	}

	// OpChange deletes text and enters insert mode.
	OpChange = Operator{
		Name:         "change",
		Keys:         "c",
		Action:       "editor.change",
		ChangesText:  true,
		EntersInsert: true,
	}

	// OpYank copies text to a register.
	OpYank = Operator{
		Name:   "yank",
		Keys:   "y",
		Action: "editor.yank",
	}

	// OpIndentRight shifts text right.
	OpIndentRight = Operator{
		Name:        "indentRight",
		Keys:        ">",
		Action:      "editor.indentRight",
		ChangesText: true,
	}

	// OpIndentLeft shifts text left.
	OpIndentLeft = Operator{
		Name:        "indentLeft",
		Keys:        "<",
		Action:      "editor.indentLeft",
		ChangesText: true,
	}

	// OpFormat formats text.
	OpFormat = Operator{
		Name:        "format",
		Keys:        "=",
		Action:      "editor.format",
		ChangesText: true,
	}

	// OpToLower converts text to lowercase.
	OpToLower = Operator{
		Name:        "toLower",
		Keys:        "gu",
		Action:      "editor.toLower",
		ChangesText: true,
	}

	// OpToUpper converts text to uppercase.
	OpToUpper = Operator{
		Name:        "toUpper",
		Keys:        "gU",
		Action:      "editor.toUpper",
		ChangesText: true,
	}

	// OpToggleCase toggles case.
	OpToggleCase = Operator{
		Name:        "toggleCase",
		Keys:        "g~",
		Action:      "editor.toggleCase",
		ChangesText: true,
	}
)

// Operators returns every standard operator.
func Operators() []*Operator {
	return []*Operator{
		&OpDelete, &OpChange, &OpYank,
		&OpIndentRight, &OpIndentLeft, &OpFormat,
		&OpToLower, &OpToUpper, &OpToggleCase,
	}
}

// Operate applies the operator's host action to r. Line-wise regions are
// widened to whole lines first.
func (o *Operator) Operate(ed editor.Adaptor, count int, r buffer.TextRange, ct cursor.ContentType) error {
	if ct == cursor.Lines {
		r = expandLines(ed, r)
	}
	return command.OnSelection(command.HostAction(o.Action)).Operate(ed, count, r, ct)
}

// String returns the operator name.
func (o *Operator) String() string {
	return o.Name
}

// OnVisual returns the command applying the operator to the active
// selection and, unless it enters insert mode, leaving visual mode.
func (o *Operator) OnVisual() command.Command {
	steps := []command.Command{command.RememberSelection, command.HostAction(o.Action)}
	if !o.EntersInsert {
		steps = append(steps, command.LeaveVisual)
	}
	return command.DontRepeat(command.WithoutCount(command.Seq(steps...)))
}

// expandLines widens r to cover every line it touches, including the final
// line break. The right bound is taken as a position on the last line. On the
// last line of the document the preceding break is taken instead.
func expandLines(c editor.Content, r buffer.TextRange) buffer.TextRange {
	start := lineStart(c, r.LeftBound().ModelOffset())
	end := lineEnd(c, r.RightBound().ModelOffset())
	if end < c.TextLength() {
		end++
	} else if start > 0 {
		start--
	}
	return buffer.NewOffsetRange(start, end)
}

// lineObject covers count whole lines from the caret. It backs the doubled
// operators such as "dd" and "gUU".
type lineObject struct{}

// Lines is the text object for doubled operators.
var Lines command.TextObject = lineObject{}

func (lineObject) Region(ed editor.Adaptor, count int) (buffer.TextRange, error) {
	ls := lineStart(ed, ed.Position().ModelOffset())
	last := ls
	for i := 1; i < command.Effective(count); i++ {
		next, ok := nextLine(ed, last)
		if !ok {
			break
		}
		last = next
	}
	return buffer.NewOffsetRange(ls, lineEnd(ed, last)), nil
}

func (lineObject) ContentType(option.Reader) cursor.ContentType {
	return cursor.Lines
}

func (lineObject) String() string { return "line" }
