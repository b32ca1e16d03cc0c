package buffer

import "sort"

// Well-known mark names.
const (
	// LastSelectionStart marks where the last visual area started ('<).
	LastSelectionStart = "<"

	// LastSelectionEnd marks where the last visual area ended ('>).
	LastSelectionEnd = ">"

	// LastSelectionCaret marks the caret end of the last visual area.
	LastSelectionCaret = "visual:caret"

	// LastJump marks the position before the latest jump (``).
	LastJump = "`"
)

// Mark is a named position. It does not own any document content.
type Mark struct {
	Name     string
	Position Position
}

// MarkTable is a name-to-position relation.
// The zero value is ready to use. MarkTable is not safe for concurrent use.
type MarkTable struct {
	marks map[string]Position
}

// NewMarkTable creates an empty mark table.
func NewMarkTable() *MarkTable {
	return &MarkTable{marks: make(map[string]Position)}
}

// SetMark records p under name, replacing any previous mark.
func (t *MarkTable) SetMark(name string, p Position) {
	if t.marks == nil {
		t.marks = make(map[string]Position)
	}
	t.marks[name] = p
}

// Mark returns the position recorded under name.
func (t *MarkTable) Mark(name string) (Position, bool) {
	p, ok := t.marks[name]
	return p, ok
}

// Delete removes a mark.
func (t *MarkTable) Delete(name string) {
	delete(t.marks, name)
}

// Marks returns all marks sorted by name.
func (t *MarkTable) Marks() []Mark {
	out := make([]Mark, 0, len(t.marks))
	for name, p := range t.marks {
		out = append(out, Mark{Name: name, Position: p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
