// Package vim provides the base Vim grammar: motions, text objects and
// operators, and the binding provider that wires them into normal, visual
// and insert mode.
//
// # Vim Grammar
//
// Counts are handled by the resolver, so the grammar bound here is:
//
//	[count][motion]
//	[count][operator][motion|text-object]
//	[count][operator][operator-key]      (line-wise: dd, yy, gUU)
//	[count][simple-command]
//
// Examples:
//   - "5j": count=5, motion=j (move down 5 lines)
//   - "3dw": count=3, operator=d, motion=w (delete 3 words)
//   - "diw": operator=d, text-object=iw (delete inner word)
//   - "gUiw": operator=gU, text-object=iw (upper-case inner word)
//   - "dd": operator=d, line-wise (delete line)
//
// In visual mode motions extend the selection, text objects replace it and
// operators act on it and return to normal mode.
//
// # Usage
//
//	reg, err := mode.NewRegistry(vim.Provider())
package vim
