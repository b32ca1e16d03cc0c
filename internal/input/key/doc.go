// Package key provides the key symbols consumed by the modal resolver.
//
// The package defines:
//
//   - Key: identifies a keyboard key (special keys, function keys, or runes)
//   - Modifier: modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: a single key press delivered by the host
//   - Stroke: the comparable, normalized form of an Event used as a trie key
//   - Sequence: a series of strokes forming a binding
//
// # Key Specifications
//
// Key specifications can be written in multiple formats:
//
//   - Simple keys: "a", "A", "1", "Enter", "Escape"
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+P"
//   - Vim-style: "<C-s>", "<A-f>", "<C-S-p>", "<CR>", "<Esc>"
//
// Sequences are written either space separated ("g U") or as a continuous
// Vim-style string ("gU", "<C-w>j").
package key
