// Package input turns key events into executed modal commands.
//
// A Session owns a resolver positioned in the active mode's binding trie.
// Each key fed to the session either extends the pending sequence, resolves
// to a command that is executed against the host editor, or falls through.
//
// # Modes
//
// After every command the session asks the host for its current mode and
// moves the resolver to that mode's trie. Unbound keys in inserting modes
// are typed into the document when the host implements
// editor.TextInserter.
//
// # Repeat
//
// The "." binding replays the last command whose Repeatable method reports
// true, with its count. A count typed before "." replaces the remembered one.
// Text typed after a repeatable command that entered insert mode is replayed
// too.
//
// # Reloading
//
// SetRegistry may be called from any goroutine. The new registry is adopted
// when the next key arrives with nothing pending.
//
// # Usage
//
//	reg, err := mode.NewRegistry(vim.Provider())
//	if err != nil {
//	    return err
//	}
//	s, err := input.NewSession(doc, reg)
//	if err != nil {
//	    return err
//	}
//	out, err := s.Feed(ev)
package input
