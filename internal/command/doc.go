// Package command defines executable editing commands and the primitives
// used to compose them.
//
// A Command runs against an editor.Adaptor with the count typed before it
// (NoCount when none was typed) and declares whether dot-repeat may replay
// it. Commands are immutable values, so one command can sit at many places
// in a binding trie.
//
// Composition:
//
//   - Seq runs commands in order and stops at the first failure
//   - DontRepeat hides a command from dot-repeat
//   - CountIgnoring drops the count
//   - OnSelection turns a selection command into an Operator
//
// The operator composer builds the cross product of one operator with a
// whole trie of motions and text objects:
//
//	motions := state.New(state.Leaf(key.Rune('w'), wordForward))
//	root := state.New(command.OperatorCmds(key.Rune('d'), deleteOp, motions))
//	// "dw" now resolves to a command that deletes one word
package command
