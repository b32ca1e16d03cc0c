package state

import (
	"sort"

	"github.com/dshills/modalcore/internal/input/key"
)

// Kind tags the variant held by a Node.
type Kind uint8

const (
	// KindLeaf is a terminal node carrying a payload.
	KindLeaf Kind = iota + 1
	// KindTransition is an inner node leading to another state.
	KindTransition
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindTransition:
		return "transition"
	default:
		return "invalid"
	}
}

// Node is the result of advancing a state by one stroke.
type Node[T any] struct {
	kind    Kind
	payload T
	next    *State[T]
}

// LeafNode creates a terminal node.
func LeafNode[T any](payload T) Node[T] {
	return Node[T]{kind: KindLeaf, payload: payload}
}

// TransitionNode creates an inner node leading to next.
func TransitionNode[T any](next *State[T]) Node[T] {
	if next == nil {
		next = New[T]()
	}
	return Node[T]{kind: KindTransition, next: next}
}

// Kind returns the node variant.
func (n Node[T]) Kind() Kind { return n.kind }

// IsLeaf reports whether the node is terminal.
func (n Node[T]) IsLeaf() bool { return n.kind == KindLeaf }

// Payload returns the leaf payload. It is the zero value for transitions.
func (n Node[T]) Payload() T { return n.payload }

// Next returns the child state of a transition, or nil for leaves.
func (n Node[T]) Next() *State[T] { return n.next }

// Binding pairs a stroke with the node it leads to.
type Binding[T any] struct {
	Key  key.Stroke
	Node Node[T]
}

// Leaf binds k to a terminal payload.
func Leaf[T any](k key.Stroke, payload T) Binding[T] {
	return Binding[T]{Key: k, Node: LeafNode(payload)}
}

// Transition binds k to a child state built from children.
func Transition[T any](k key.Stroke, children ...Binding[T]) Binding[T] {
	return Binding[T]{Key: k, Node: TransitionNode(New(children...))}
}

// TransitionTo binds k to an existing child state.
func TransitionTo[T any](k key.Stroke, next *State[T]) Binding[T] {
	return Binding[T]{Key: k, Node: TransitionNode(next)}
}

// State is one level of the keystroke trie.
// A nil *State behaves like an empty state.
type State[T any] struct {
	nodes map[key.Stroke]Node[T]
}

// New builds a state from bindings, applying them in order.
func New[T any](bindings ...Binding[T]) *State[T] {
	s := &State[T]{nodes: make(map[key.Stroke]Node[T], len(bindings))}
	for _, b := range bindings {
		s.put(b.Key, b.Node)
	}
	return s
}

// put inserts n under k. Only called while a state is under construction.
func (s *State[T]) put(k key.Stroke, n Node[T]) {
	old, ok := s.nodes[k]
	if ok && old.kind == KindTransition && n.kind == KindTransition {
		n = TransitionNode(Union(old.next, n.next))
	}
	s.nodes[k] = n
}

// Advance returns the node bound to k.
func (s *State[T]) Advance(k key.Stroke) (Node[T], bool) {
	if s == nil {
		return Node[T]{}, false
	}
	n, ok := s.nodes[k]
	return n, ok
}

// Len returns the number of strokes bound at this level.
func (s *State[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.nodes)
}

// Keys returns the strokes bound at this level in display order.
func (s *State[T]) Keys() []key.Stroke {
	if s == nil {
		return nil
	}
	keys := make([]key.Stroke, 0, len(s.nodes))
	for k := range s.nodes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	return keys
}

// Lookup follows seq from s and returns the node at its end.
func (s *State[T]) Lookup(seq key.Sequence) (Node[T], bool) {
	if len(seq) == 0 {
		return Node[T]{}, false
	}
	cur := s
	for i, k := range seq {
		n, ok := cur.Advance(k)
		if !ok {
			return Node[T]{}, false
		}
		if i == len(seq)-1 {
			return n, true
		}
		if n.kind != KindTransition {
			return Node[T]{}, false
		}
		cur = n.next
	}
	return Node[T]{}, false
}

// Union merges states recursively. Later states win on conflicts.
func Union[T any](states ...*State[T]) *State[T] {
	out := New[T]()
	for _, s := range states {
		if s == nil {
			continue
		}
		for _, k := range s.Keys() {
			out.put(k, s.nodes[k])
		}
	}
	return out
}

// Declaration is a flat (sequence, payload) pair.
type Declaration[T any] struct {
	Keys    key.Sequence
	Payload T
}

// Declare creates a declaration.
func Declare[T any](keys key.Sequence, payload T) Declaration[T] {
	return Declaration[T]{Keys: keys, Payload: payload}
}

// Build creates a state from flat declarations. Later declarations win.
// Declarations with an empty sequence are ignored.
func Build[T any](decls []Declaration[T]) *State[T] {
	bindings := make([]Binding[T], 0, len(decls))
	for _, d := range decls {
		if len(d.Keys) == 0 {
			continue
		}
		bindings = append(bindings, chain(d.Keys, d.Payload))
	}
	return New(bindings...)
}

// chain wraps payload in one transition per stroke before the last.
func chain[T any](keys key.Sequence, payload T) Binding[T] {
	b := Leaf(keys[len(keys)-1], payload)
	for i := len(keys) - 2; i >= 0; i-- {
		b = Transition(keys[i], b)
	}
	return b
}

// Map transforms every leaf payload, keeping the trie shape.
func Map[T, U any](s *State[T], fn func(T) U) *State[U] {
	out := New[U]()
	if s == nil {
		return out
	}
	for k, n := range s.nodes {
		switch n.kind {
		case KindLeaf:
			out.nodes[k] = LeafNode(fn(n.payload))
		case KindTransition:
			out.nodes[k] = TransitionNode(Map(n.next, fn))
		}
	}
	return out
}
