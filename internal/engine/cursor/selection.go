package cursor

import (
	"fmt"

	"github.com/dshills/modalcore/internal/config/option"
	"github.com/dshills/modalcore/internal/engine/buffer"
)

// ContentType describes how an operator interprets a range.
type ContentType uint8

const (
	// Text is a character-wise region.
	Text ContentType = iota
	// Lines is a line-wise region.
	Lines
	// Block is a rectangular region.
	Block
)

var contentTypeNames = [...]string{
	Text:  "text",
	Lines: "lines",
	Block: "block",
}

// String returns the content type name.
func (c ContentType) String() string {
	if int(c) < len(contentTypeNames) {
		return contentTypeNames[c]
	}
	return fmt.Sprintf("ContentType(%d)", c)
}

// Selection is a visual selection.
type Selection interface {
	// Range returns the characters covered by the selection.
	Range() buffer.TextRange

	// From returns the anchor the selection was started at.
	From() buffer.Position

	// To returns the caret end of the selection.
	To() buffer.Position

	// StartMark returns the anchor saved to the '< mark.
	StartMark() buffer.Position

	// EndMark returns the anchor saved to the '> mark.
	EndMark() buffer.Position

	// ContentType returns how operators treat the selection.
	ContentType() ContentType

	// IsReversed reports whether the selection extends backwards.
	IsReversed() bool
}

// Context is what a selection needs from the host to rebuild itself.
type Context interface {
	buffer.Shifter
	Configuration() option.Reader
}

// SimpleSelection is a character-wise selection.
// SimpleSelection is an immutable value type.
type SimpleSelection struct {
	r    buffer.TextRange
	from buffer.Position
	to   buffer.Position
}

// NewSimpleSelection creates a selection with explicit anchors.
func NewSimpleSelection(from, to buffer.Position, r buffer.TextRange) *SimpleSelection {
	return &SimpleSelection{r: r, from: from, to: to}
}

// SelectionFromRange creates a selection covering r. When inclusive is set
// and r is not empty, the anchor on the far side of the range is pulled back
// one character so that it sits on the last selected character.
func SelectionFromRange(sh buffer.Shifter, inclusive bool, r buffer.TextRange) *SimpleSelection {
	from, to := r.Start(), r.End()
	if inclusive && r.ModelLength() > 0 {
		if r.IsReversed() {
			from = sh.ShiftPosition(r.Start(), -1, true)
		} else {
			to = sh.ShiftPosition(r.End(), -1, true)
		}
	}
	return &SimpleSelection{r: r, from: from, to: to}
}

// ExclusiveSelection creates a selection whose anchors are exactly the
// range ends.
func ExclusiveSelection(r buffer.TextRange) *SimpleSelection {
	return &SimpleSelection{r: r, from: r.Start(), to: r.End()}
}

// Range returns the characters covered by the selection.
func (s *SimpleSelection) Range() buffer.TextRange { return s.r }

// From returns the anchor the selection was started at.
func (s *SimpleSelection) From() buffer.Position { return s.from }

// To returns the caret end of the selection.
func (s *SimpleSelection) To() buffer.Position { return s.to }

// IsReversed reports whether the underlying range is reversed.
func (s *SimpleSelection) IsReversed() bool { return s.r.IsReversed() }

// ContentType always returns Text.
func (s *SimpleSelection) ContentType() ContentType { return Text }

// StartMark returns the anchor saved to the '< mark.
func (s *SimpleSelection) StartMark() buffer.Position {
	if s.r.IsReversed() {
		return s.to
	}
	return s.from
}

// EndMark returns the anchor saved to the '> mark.
func (s *SimpleSelection) EndMark() buffer.Position {
	if s.r.IsReversed() {
		return s.from
	}
	return s.to
}

// SelectMarks rebuilds a selection from saved marks, keeping the direction
// of the receiver.
func (s *SimpleSelection) SelectMarks(ctx Context, startMark, endMark buffer.Position) *SimpleSelection {
	right := endMark
	if option.IsSelectionInclusive(ctx.Configuration()) {
		right = ctx.ShiftPosition(endMark, 1, true)
	}
	if s.r.IsReversed() {
		return &SimpleSelection{
			r:    buffer.NewTextRange(right, startMark),
			from: endMark,
			to:   startMark,
		}
	}
	return &SimpleSelection{
		r:    buffer.NewTextRange(startMark, right),
		from: startMark,
		to:   endMark,
	}
}

// String returns a representation like "text[M4/V4 -> M7/V7] from=M4/V4 to=M6/V6".
func (s *SimpleSelection) String() string {
	return fmt.Sprintf("%s%s from=%s to=%s", s.ContentType(), s.r, s.from, s.to)
}

var _ Selection = (*SimpleSelection)(nil)
