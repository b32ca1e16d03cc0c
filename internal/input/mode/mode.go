package mode

import (
	"github.com/dshills/modalcore/internal/command"
	"github.com/dshills/modalcore/internal/editor"
	"github.com/dshills/modalcore/internal/input/state"
)

// Mode names.
const (
	ModeNormal = editor.ModeNormal
	ModeVisual = editor.ModeVisual
	ModeInsert = "insert"
)

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (normal mode).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (insert mode).
	CursorBar

	// CursorUnderline is an underline cursor.
	CursorUnderline
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	case CursorUnderline:
		return "underline"
	default:
		return "unknown"
	}
}

// Mode is one entry of the registry.
type Mode struct {
	// Name is the mode identifier reported by the host.
	Name string

	// DisplayName is shown in status lines, e.g. "-- VISUAL --".
	DisplayName string

	// CursorStyle is how hosts draw the caret in this mode.
	CursorStyle CursorStyle

	// Inserts reports whether unbound keys type text. Such modes take no
	// count prefix.
	Inserts bool

	// Root is the merged binding trie.
	Root *state.State[command.Command]
}

var builtinModes = map[string]Mode{
	ModeNormal: {Name: ModeNormal, DisplayName: "", CursorStyle: CursorBlock},
	ModeVisual: {Name: ModeVisual, DisplayName: "-- VISUAL --", CursorStyle: CursorBlock},
	ModeInsert: {Name: ModeInsert, DisplayName: "-- INSERT --", CursorStyle: CursorBar, Inserts: true},
}

func describeMode(name string) Mode {
	if m, ok := builtinModes[name]; ok {
		return m
	}
	return Mode{Name: name, DisplayName: "-- " + name + " --", CursorStyle: CursorUnderline}
}
