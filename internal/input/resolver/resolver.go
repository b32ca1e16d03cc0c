package resolver

import (
	"github.com/dshills/modalcore/internal/input/key"
	"github.com/dshills/modalcore/internal/input/state"
)

// Phase is the resolver's position in the input grammar.
type Phase uint8

const (
	// PhaseIdle means nothing has been typed.
	PhaseIdle Phase = iota
	// PhaseCount means a count prefix is being typed.
	PhaseCount
	// PhasePending means a sequence is partially matched.
	PhasePending
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCount:
		return "count"
	case PhasePending:
		return "pending"
	default:
		return "unknown"
	}
}

// Status is the outcome of feeding one key.
type Status uint8

const (
	// StatusPending means more keys are needed.
	StatusPending Status = iota
	// StatusResolved means a leaf was reached.
	StatusResolved
	// StatusNoMatch means the key has no binding at the current position.
	StatusNoMatch
	// StatusCancelled means Escape discarded the pending input.
	StatusCancelled
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusResolved:
		return "resolved"
	case StatusNoMatch:
		return "nomatch"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result reports what a key did.
type Result[T any] struct {
	Status Status

	// Payload is the resolved leaf payload.
	Payload T

	// Count is the typed count, 0 when none was typed.
	Count int

	// Keys holds the trie keys of the sequence, including the last key fed.
	// For StatusCancelled it holds the keys that were discarded.
	Keys key.Sequence
}

// Resolver walks a binding trie one key at a time.
// A Resolver is not safe for concurrent use.
type Resolver[T any] struct {
	noCount bool
	root    *state.State[T]
	cur     *state.State[T]
	phase   Phase
	count   CountState
	keys    key.Sequence
}

// New creates a resolver positioned at root.
func New[T any](root *state.State[T]) *Resolver[T] {
	r := &Resolver[T]{}
	r.SetRoot(root)
	return r
}

// SetRoot replaces the trie (on a mode switch) and resets to Idle.
func (r *Resolver[T]) SetRoot(root *state.State[T]) {
	if root == nil {
		root = state.New[T]()
	}
	r.root = root
	r.Reset()
}

// SetCounting controls whether digits typed while Idle form a count prefix.
// Disabled counting sends every digit to the trie.
func (r *Resolver[T]) SetCounting(on bool) {
	r.noCount = !on
}

// Root returns the current trie.
func (r *Resolver[T]) Root() *state.State[T] {
	return r.root
}

// Reset discards pending input.
func (r *Resolver[T]) Reset() {
	r.cur = r.root
	r.phase = PhaseIdle
	r.count.Reset()
	r.keys = nil
}

// Phase returns the current phase.
func (r *Resolver[T]) Phase() Phase {
	return r.phase
}

// Count returns the count typed so far.
func (r *Resolver[T]) Count() int {
	return r.count.Value
}

// Pending renders the keys typed since the last resolution, e.g. "3d".
func (r *Resolver[T]) Pending() string {
	return r.count.String() + r.keys.String()
}

// Feed advances the resolver by one key.
func (r *Resolver[T]) Feed(ev key.Event) Result[T] {
	if ev.IsEscape() {
		res := Result[T]{Status: StatusCancelled, Count: r.count.Value, Keys: r.keys}
		r.Reset()
		return res
	}

	if !r.noCount && r.phase != PhasePending && ev.IsDigit() && r.count.AccumulateDigit(ev.Rune) {
		r.phase = PhaseCount
		return Result[T]{Status: StatusPending, Count: r.count.Value}
	}

	k := ev.Stroke()
	r.keys = r.keys.Append(k)
	node, ok := r.cur.Advance(k)
	if !ok {
		res := Result[T]{Status: StatusNoMatch, Count: r.count.Value, Keys: r.keys}
		r.Reset()
		return res
	}

	if node.Kind() == state.KindTransition {
		r.cur = node.Next()
		r.phase = PhasePending
		return Result[T]{Status: StatusPending, Count: r.count.Value, Keys: r.keys}
	}

	res := Result[T]{Status: StatusResolved, Payload: node.Payload(), Count: r.count.Value, Keys: r.keys}
	r.Reset()
	return res
}
