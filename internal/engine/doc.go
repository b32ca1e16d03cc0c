// Package engine provides Document, an in-memory host editor implementing
// every capability the modal core needs.
//
// Document is the reference host: the CLI drives it, and package tests use
// it to check commands end to end. Text is stored as runes so that model
// offsets are character indexes.
//
// # Basic Usage
//
//	d := engine.New(engine.WithContent("hello world"))
//	d.SetPosition(buffer.NewPosition(6), false)
//	d.SetSelection(cursor.ExclusiveSelection(buffer.NewOffsetRange(6, 11)))
//	_ = d.Dispatch(engine.ActionToUpper)
//	d.Text() // "hello WORLD"
//
// # Actions
//
// Operator actions act on the active selection and clear it afterwards:
//
//   - editor.delete, editor.change, editor.yank
//   - editor.toLower, editor.toUpper, editor.toggleCase
//   - editor.indentRight, editor.indentLeft, editor.format
//
// Hosts embedding Document can register further actions with
// RegisterAction; the Lua platform uses this to expose scripted actions.
//
// # Modes
//
// Document knows the normal, visual and insert modes. Entering normal or
// insert mode drops any selection.
//
// # Thread Safety
//
// Document is not safe for concurrent use. A session and its document
// belong to a single goroutine.
package engine
