package key

import (
	"strings"
)

// Sequence is a series of strokes forming a binding.
// Examples: "gg" (go to top), "diw" (delete inner word), "<C-w>j".
type Sequence []Stroke

// Runes creates a sequence of unmodified character strokes.
func Runes(s string) Sequence {
	seq := make(Sequence, 0, len(s))
	for _, r := range s {
		seq = append(seq, Rune(r))
	}
	return seq
}

// String returns the Vim-style representation, e.g. "diw" or "<C-x><C-s>".
func (s Sequence) String() string {
	var sb strings.Builder
	for _, st := range s {
		sb.WriteString(st.String())
	}
	return sb.String()
}

// Equals returns true if two sequences are identical.
func (s Sequence) Equals(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix returns true if this sequence starts with the given prefix.
func (s Sequence) HasPrefix(prefix Sequence) bool {
	if len(prefix) > len(s) {
		return false
	}
	return s[:len(prefix)].Equals(prefix)
}

// Append returns a new sequence with other appended. The receiver is not modified.
func (s Sequence) Append(other ...Stroke) Sequence {
	out := make(Sequence, 0, len(s)+len(other))
	out = append(out, s...)
	return append(out, other...)
}

// ParseSequence parses a key sequence string into a Sequence.
// The string can contain space-separated keys or a continuous Vim-style sequence.
// Examples: "g g", "d i w", "<C-x><C-s>", "dd"
func ParseSequence(s string) (Sequence, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptySpec
	}

	if strings.ContainsAny(s, " \t") {
		parts := strings.Fields(s)
		seq := make(Sequence, 0, len(parts))
		for _, part := range parts {
			st, err := Parse(part)
			if err != nil {
				return nil, err
			}
			seq = append(seq, st)
		}
		return seq, nil
	}

	seq := make(Sequence, 0, len(s))
	rs := []rune(s)
	for i := 0; i < len(rs); {
		if rs[i] == '<' {
			if end := indexRune(rs[i:], '>'); end > 1 {
				st, err := Parse(string(rs[i : i+end+1]))
				if err != nil {
					return nil, err
				}
				seq = append(seq, st)
				i += end + 1
				continue
			}
		}
		seq = append(seq, Rune(rs[i]))
		i++
	}

	return seq, nil
}

// MustParseSequence parses a sequence string and panics on error.
// Use only for known-valid sequences in initialization code.
func MustParseSequence(s string) Sequence {
	seq, err := ParseSequence(s)
	if err != nil {
		panic("invalid key sequence: " + s + ": " + err.Error())
	}
	return seq
}

func indexRune(rs []rune, r rune) int {
	for i, c := range rs {
		if c == r {
			return i
		}
	}
	return -1
}
