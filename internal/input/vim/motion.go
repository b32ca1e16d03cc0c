package vim

import (
	"github.com/dshills/modalcore/internal/command"
	"github.com/dshills/modalcore/internal/config/option"
	"github.com/dshills/modalcore/internal/editor"
	"github.com/dshills/modalcore/internal/engine/buffer"
	"github.com/dshills/modalcore/internal/engine/cursor"
)

// MotionType categorizes motions by their behavior.
type MotionType uint8

const (
	// MotionCharwise moves character by character.
	MotionCharwise MotionType = iota

	// MotionLinewise operates on whole lines.
	MotionLinewise
)

// Motion represents a Vim motion command.
// Motions define how the cursor moves and what range an operator affects.
type Motion struct {
	// Name is the motion identifier (e.g., "wordForward", "lineEnd").
	Name string

	// Keys is the key sequence that triggers this motion.
	Keys string

	// Type indicates the motion type (charwise, linewise).
	Type MotionType

	// Inclusive indicates if the motion includes the character under cursor.
	// e.g., 'e' is inclusive, 'w' is exclusive.
	Inclusive bool

	// move computes the target offset. count is the raw count.
	move func(c editor.Content, from, count int) int

	// clipLine stops an operator range at the end of the last word's line.
	clipLine bool
}

// Standard Vim motions.
var (
	// Character motions
	MotionLeft = Motion{
		Name: "left",
		Keys: "h",
		move: func(c editor.Content, from, count int) int {
			return max(lineStart(c, from), from-command.Effective(count))
		},
	}

	MotionRight = Motion{
		Name: "right",
		Keys: "l",
		move: func(c editor.Content, from, count int) int {
			return min(lineEnd(c, from), from+command.Effective(count))
		},
	}

	MotionUp = Motion{
		Name: "up",
		Keys: "k",
		Type: MotionLinewise,
		move: func(c editor.Content, from, count int) int {
			col := from - lineStart(c, from)
			ls := lineStart(c, from)
			for i := 0; i < command.Effective(count); i++ {
				prev, ok := prevLine(c, ls)
				if !ok {
					break
				}
				ls = prev
			}
			return withColumn(c, ls, col)
		},
	}

	MotionDown = Motion{
		Name: "down",
		Keys: "j",
		Type: MotionLinewise,
		move: func(c editor.Content, from, count int) int {
			col := from - lineStart(c, from)
			ls := lineStart(c, from)
			for i := 0; i < command.Effective(count); i++ {
				next, ok := nextLine(c, ls)
				if !ok {
					break
				}
				ls = next
			}
			return withColumn(c, ls, col)
		},
	}

	// Word motions
	MotionWordForward = Motion{
		Name:     "wordForward",
		Keys:     "w",
		move:     repeatMove(wordForward, false),
		clipLine: true,
	}

	MotionWordBackward = Motion{
		Name: "wordBackward",
		Keys: "b",
		move: repeatMove(wordBackward, false),
	}

	MotionWordEnd = Motion{
		Name:      "wordEnd",
		Keys:      "e",
		Inclusive: true,
		move:      repeatMove(wordEnd, false),
	}

	// WORD motions (whitespace-delimited)
	MotionWORDForward = Motion{
		Name:     "WORDForward",
		Keys:     "W",
		move:     repeatMove(wordForward, true),
		clipLine: true,
	}

	MotionWORDBackward = Motion{
		Name: "WORDBackward",
		Keys: "B",
		move: repeatMove(wordBackward, true),
	}

	MotionWORDEnd = Motion{
		Name:      "WORDEnd",
		Keys:      "E",
		Inclusive: true,
		move:      repeatMove(wordEnd, true),
	}

	// Line motions
	MotionLineStart = Motion{
		Name: "lineStart",
		Keys: "0",
		move: func(c editor.Content, from, _ int) int {
			return lineStart(c, from)
		},
	}

	MotionFirstNonBlank = Motion{
		Name: "firstNonBlank",
		Keys: "^",
		move: func(c editor.Content, from, _ int) int {
			return firstNonBlank(c, from)
		},
	}

	MotionLineEnd = Motion{
		Name:      "lineEnd",
		Keys:      "$",
		Inclusive: true,
		move: func(c editor.Content, from, count int) int {
			ls := lineStart(c, from)
			for i := 1; i < command.Effective(count); i++ {
				next, ok := nextLine(c, ls)
				if !ok {
					break
				}
				ls = next
			}
			return lastChar(c, ls)
		},
	}

	// Document motions
	MotionDocumentStart = Motion{
		Name: "documentStart",
		Keys: "gg",
		Type: MotionLinewise,
		move: func(c editor.Content, _, count int) int {
			return firstNonBlank(c, lineNumber(c, command.Effective(count)))
		},
	}

	MotionDocumentEnd = Motion{
		Name: "documentEnd",
		Keys: "G",
		Type: MotionLinewise,
		move: func(c editor.Content, _, count int) int {
			if count == command.NoCount {
				return firstNonBlank(c, lineStart(c, c.TextLength()))
			}
			return firstNonBlank(c, lineNumber(c, count))
		},
	}
)

// Motions returns every standard motion.
func Motions() []*Motion {
	return []*Motion{
		&MotionLeft, &MotionRight, &MotionUp, &MotionDown,
		&MotionWordForward, &MotionWordBackward, &MotionWordEnd,
		&MotionWORDForward, &MotionWORDBackward, &MotionWORDEnd,
		&MotionLineStart, &MotionFirstNonBlank, &MotionLineEnd,
		&MotionDocumentStart, &MotionDocumentEnd,
	}
}

// Target returns where the caret lands.
func (m *Motion) Target(ed editor.Adaptor, count int) (buffer.Position, error) {
	from := ed.Position().ModelOffset()
	return buffer.NewPosition(m.move(ed, from, count)), nil
}

// Region returns the range an operator acts on. Line-wise motions return
// the span between the caret and the target; operators widen it to lines.
func (m *Motion) Region(ed editor.Adaptor, count int) (buffer.TextRange, error) {
	from := ed.Position().ModelOffset()
	to := m.move(ed, from, count)
	if m.Type == MotionLinewise {
		return buffer.NewOffsetRange(min(from, to), max(from, to)), nil
	}
	if m.clipLine && to > from {
		to = clipToLine(ed, from, to)
	}
	if m.Inclusive {
		if to >= from {
			to = min(to+1, ed.TextLength())
		} else {
			from = min(from+1, ed.TextLength())
		}
	}
	return buffer.NewOffsetRange(from, to), nil
}

// ContentType returns Lines for linewise motions.
func (m *Motion) ContentType(option.Reader) cursor.ContentType {
	if m.Type == MotionLinewise {
		return cursor.Lines
	}
	return cursor.Text
}

// String returns the motion name.
func (m *Motion) String() string {
	return m.Name
}

// clipToLine keeps an operator from deleting the line break after the last
// word it moved over.
func clipToLine(c editor.Content, from, to int) int {
	if lineStart(c, to) == lineStart(c, from) {
		return to
	}
	end := to
	for end > from {
		if cls := classAt(c, end-1, false); cls != classNewline && cls != classBlank {
			break
		}
		end--
	}
	if end == from {
		return to
	}
	return end
}

func repeatMove(step func(c editor.Content, from int, big bool) int, big bool) func(editor.Content, int, int) int {
	return func(c editor.Content, from, count int) int {
		at := from
		for i := 0; i < command.Effective(count); i++ {
			next := step(c, at, big)
			if next == at {
				break
			}
			at = next
		}
		return at
	}
}

func wordForward(c editor.Content, from int, big bool) int {
	n := c.TextLength()
	if from >= n {
		return n
	}
	i := from
	if cls := classAt(c, i, big); cls == classWord || cls == classPunct {
		for i < n && classAt(c, i, big) == cls {
			i++
		}
	}
	for i < n {
		switch classAt(c, i, big) {
		case classBlank:
			i++
		case classNewline:
			i++
			if isNewline(c, i) {
				return i
			}
		default:
			return i
		}
	}
	return n
}

func wordBackward(c editor.Content, from int, big bool) int {
	i := from - 1
	for i > 0 {
		cls := classAt(c, i, big)
		if cls == classNewline && isNewline(c, i-1) {
			return i
		}
		if cls != classBlank && cls != classNewline {
			break
		}
		i--
	}
	if i <= 0 {
		return 0
	}
	cls := classAt(c, i, big)
	for i > 0 && classAt(c, i-1, big) == cls {
		i--
	}
	return i
}

func wordEnd(c editor.Content, from int, big bool) int {
	n := c.TextLength()
	if n == 0 {
		return 0
	}
	i := from + 1
	for i < n {
		if cls := classAt(c, i, big); cls != classBlank && cls != classNewline {
			break
		}
		i++
	}
	if i >= n {
		return n - 1
	}
	cls := classAt(c, i, big)
	for i+1 < n && classAt(c, i+1, big) == cls {
		i++
	}
	return i
}
