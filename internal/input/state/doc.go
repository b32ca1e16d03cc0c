// Package state implements the keystroke trie that drives command
// resolution.
//
// A State maps a key stroke to a Node. A Node is either a Leaf carrying a
// payload (usually a command) or a Transition to a child State that
// continues the sequence. States are immutable once built and may be shared
// between resolvers and goroutines.
//
// Construction Policy:
//
// Both New and Build apply bindings in order. When two bindings claim the
// same key, two transitions are merged recursively; in every other case the
// later binding replaces the earlier one. Union applies the same rule across
// whole states, so the last state passed takes precedence. Conflicts reports
// the sequences where such a replacement would happen, for callers that want
// to reject them up front.
//
// Basic usage:
//
//	root := state.New(
//		state.Leaf(key.Rune('x'), deleteChar),
//		state.Transition(key.Rune('g'),
//			state.Leaf(key.Rune('g'), gotoTop),
//		),
//	)
//	node, ok := root.Advance(key.Rune('g'))
//	// ok == true, node.Kind() == state.KindTransition
package state
