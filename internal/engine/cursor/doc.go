// Package cursor provides the selection model used by visual mode.
//
// A Selection is a TextRange plus two caret anchors, From and To. The range
// holds the exact characters an operator acts on; the anchors are where the
// caret and the selection anchor are drawn. Under the inclusive selection
// option the character under the caret belongs to the selection, so the
// anchors sit one character inside the range on its far side.
//
// Selection Model:
//
//   - From: where the selection started
//   - To: where the caret currently is
//   - StartMark/EndMark: the anchors saved to the '< and '> marks
//
// A range dragged backwards keeps its reversed flag, and the anchors are
// swapped so that StartMark is always the anchor the user started at.
//
// Basic usage:
//
//	r := buffer.NewOffsetRange(4, 7)
//	sel := cursor.SelectionFromRange(host, true, r)
//	sel.From() // 4
//	sel.To()   // 6
package cursor
