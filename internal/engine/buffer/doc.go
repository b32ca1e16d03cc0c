// Package buffer provides the storage-independent location types used by
// the modal core: positions, text ranges and marks.
//
// Positions are values captured at a point in time. A model offset is the
// logical character index in the document and stays meaningful only until
// the next edit. A view offset is the on-screen offset and may be absent when
// the host has no mapping (for example inside a folded region).
//
// A TextRange records whether it was constructed end-before-start. That flag
// is derived once and carried unchanged, so a selection dragged backwards
// stays backwards through every transformation.
//
// Basic usage:
//
//	r := buffer.NewTextRange(buffer.NewPosition(7), buffer.NewPosition(4))
//	r.IsReversed()   // true
//	r.ModelLength()  // 3
//	r.LeftBound()    // model offset 4
package buffer
