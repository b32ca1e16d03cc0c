package buffer

import "fmt"

// TextRange is an ordered pair of positions.
// Start and End keep the order they were constructed with; Reversed
// records whether End precedes Start in document order.
// TextRange is an immutable value type.
type TextRange struct {
	start    Position
	end      Position
	reversed bool
}

// NewTextRange creates a range from start to end.
func NewTextRange(start, end Position) TextRange {
	return TextRange{
		start:    start,
		end:      end,
		reversed: end.Before(start),
	}
}

// NewOffsetRange creates a range from two model offsets.
func NewOffsetRange(start, end int) TextRange {
	return NewTextRange(NewPosition(start), NewPosition(end))
}

// Start returns the position the range was started at.
func (r TextRange) Start() Position { return r.start }

// End returns the position the range was ended at.
func (r TextRange) End() Position { return r.end }

// IsReversed reports whether the range was constructed end-before-start.
func (r TextRange) IsReversed() bool { return r.reversed }

// LeftBound returns the earlier of Start and End.
func (r TextRange) LeftBound() Position {
	if r.reversed {
		return r.end
	}
	return r.start
}

// RightBound returns the later of Start and End.
func (r TextRange) RightBound() Position {
	if r.reversed {
		return r.start
	}
	return r.end
}

// ModelLength returns the number of characters covered. Never negative.
func (r TextRange) ModelLength() int {
	return r.RightBound().ModelOffset() - r.LeftBound().ModelOffset()
}

// ViewLength returns the on-screen length, or NoView when either end has
// no screen mapping.
func (r TextRange) ViewLength() int {
	if !r.start.HasView() || !r.end.HasView() {
		return NoView
	}
	n := r.end.ViewOffset() - r.start.ViewOffset()
	if n < 0 {
		n = -n
	}
	return n
}

// IsEmpty returns true if the range covers no characters.
func (r TextRange) IsEmpty() bool {
	return r.ModelLength() == 0
}

// Contains reports whether the model offset lies in [LeftBound, RightBound).
func (r TextRange) Contains(offset int) bool {
	return offset >= r.LeftBound().ModelOffset() && offset < r.RightBound().ModelOffset()
}

// Normalize returns the same span with Start <= End.
func (r TextRange) Normalize() TextRange {
	if !r.reversed {
		return r
	}
	return NewTextRange(r.end, r.start)
}

// String returns a representation like "[M4/V4 -> M7/V7]" or "[M7/V7 <- M4/V4]".
func (r TextRange) String() string {
	if r.reversed {
		return fmt.Sprintf("[%s <- %s]", r.start, r.end)
	}
	return fmt.Sprintf("[%s -> %s]", r.start, r.end)
}
