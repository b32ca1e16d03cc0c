// Package option names the configuration options the modal core reads and
// defines the read-only contract hosts implement to expose them.
package option

import "strings"

// Option names.
const (
	// Selection controls how visual selections treat their last character.
	// Values: SelectionInclusive, SelectionExclusive.
	Selection = "selection"
)

// Values for the Selection option.
const (
	SelectionInclusive = "inclusive"
	SelectionExclusive = "exclusive"
)

// Reader provides read access to configuration options.
type Reader interface {
	// Option returns the value of the named option and whether it is set.
	Option(name string) (string, bool)
}

// Map is a Reader backed by a plain map.
type Map map[string]string

// Option implements Reader.
func (m Map) Option(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// IsSelectionInclusive reports whether the selection option is inclusive.
// An unset option or a nil reader defaults to inclusive, matching Vim.
func IsSelectionInclusive(r Reader) bool {
	if r == nil {
		return true
	}
	v, ok := r.Option(Selection)
	if !ok {
		return true
	}
	return !strings.EqualFold(strings.TrimSpace(v), SelectionExclusive)
}

// ValidSelection reports whether v is an accepted value for Selection.
func ValidSelection(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case SelectionInclusive, SelectionExclusive:
		return true
	}
	return false
}
