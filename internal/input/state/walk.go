package state

import "github.com/dshills/modalcore/internal/input/key"

// Entry is a complete sequence and the payload it resolves to.
type Entry[T any] struct {
	Keys    key.Sequence
	Payload T
}

// Walk calls fn for every leaf in display order. Walking stops when fn
// returns false.
func (s *State[T]) Walk(fn func(keys key.Sequence, payload T) bool) {
	s.walk(nil, fn)
}

func (s *State[T]) walk(prefix key.Sequence, fn func(key.Sequence, T) bool) bool {
	for _, k := range s.Keys() {
		seq := prefix.Append(k)
		n := s.nodes[k]
		switch n.kind {
		case KindLeaf:
			if !fn(seq, n.payload) {
				return false
			}
		case KindTransition:
			if !n.next.walk(seq, fn) {
				return false
			}
		}
	}
	return true
}

// Entries returns every leaf in display order.
func (s *State[T]) Entries() []Entry[T] {
	var out []Entry[T]
	s.Walk(func(keys key.Sequence, payload T) bool {
		out = append(out, Entry[T]{Keys: keys, Payload: payload})
		return true
	})
	return out
}

// Conflict describes a sequence whose binding changes when one state is
// merged over another.
type Conflict struct {
	Keys key.Sequence
	// Shadowed is true when a leaf replaces a transition or the reverse,
	// hiding every longer sequence below Keys.
	Shadowed bool
}

// Conflicts reports the sequences where Union(base, ext) differs from base
// for a sequence base already binds.
func Conflicts[T any](base, ext *State[T]) []Conflict {
	var out []Conflict
	conflicts(base, ext, nil, &out)
	return out
}

func conflicts[T any](base, ext *State[T], prefix key.Sequence, out *[]Conflict) {
	for _, k := range ext.Keys() {
		old, ok := base.Advance(k)
		if !ok {
			continue
		}
		n := ext.nodes[k]
		seq := prefix.Append(k)
		switch {
		case old.kind == KindTransition && n.kind == KindTransition:
			conflicts(old.next, n.next, seq, out)
		case old.kind == KindLeaf && n.kind == KindLeaf:
			*out = append(*out, Conflict{Keys: seq})
		default:
			*out = append(*out, Conflict{Keys: seq, Shadowed: true})
		}
	}
}
