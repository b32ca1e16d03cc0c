package buffer

import "fmt"

// NoView is the view offset of a position without a screen mapping.
const NoView = -1

// Position is a location in the document at a point in time.
// Positions are comparable values; two positions are == when both their
// model and view offsets match.
type Position struct {
	model int
	view  int
}

// NewPosition creates a position whose view offset equals its model offset.
// Negative offsets are clamped to 0.
func NewPosition(model int) Position {
	if model < 0 {
		model = 0
	}
	return Position{model: model, view: model}
}

// NewViewPosition creates a position with an explicit view offset.
// Pass NoView when the position has no screen mapping.
func NewViewPosition(model, view int) Position {
	if model < 0 {
		model = 0
	}
	if view < 0 {
		view = NoView
	}
	return Position{model: model, view: view}
}

// ModelOffset returns the logical character index.
func (p Position) ModelOffset() int {
	return p.model
}

// ViewOffset returns the screen offset, or NoView.
func (p Position) ViewOffset() int {
	return p.view
}

// HasView reports whether the position maps to the screen.
func (p Position) HasView() bool {
	return p.view != NoView
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other,
// ordering by model offset.
func (p Position) Compare(other Position) int {
	switch {
	case p.model < other.model:
		return -1
	case p.model > other.model:
		return 1
	default:
		return 0
	}
}

// Before returns true if p comes before other in document order.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other in document order.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// String returns a human-readable representation like "M12/V10".
func (p Position) String() string {
	if !p.HasView() {
		return fmt.Sprintf("M%d/V-", p.model)
	}
	return fmt.Sprintf("M%d/V%d", p.model, p.view)
}

// Shifter performs clamped character arithmetic on positions.
// It is implemented by the host editor, which knows the document bounds.
type Shifter interface {
	// ShiftPosition moves p by delta characters, clamped to the document.
	// When allowPastEnd is false the result never lands past the last
	// character of its line.
	ShiftPosition(p Position, delta int, allowPastEnd bool) Position
}
