// Package lua runs host actions written in Lua.
//
// Scripts register actions through the global "modal" table:
//
//	modal.action("script.rot13", function()
//	    local s, e = modal.selection()
//	    if s == nil then return end
//	    modal.replace(s, e, rot13(modal.slice(s, e)))
//	end)
//
// Install registers every scripted action on a document, where key bindings
// reach it like any built-in action. Offsets are zero-based character
// offsets and ranges are half-open.
//
// Only the base, table, string and math libraries are opened. Functions that
// load code from disk or strings are removed. Each action call runs under a
// timeout.
//
// A Runtime wraps a single Lua state and is not safe for concurrent use
// beyond the serialization its mutex provides.
package lua
