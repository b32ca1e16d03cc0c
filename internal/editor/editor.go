// Package editor defines the capabilities the modal core needs from a host
// editor. Hosts implement Adaptor; commands receive it on every execution.
package editor

import (
	"errors"

	"github.com/dshills/modalcore/internal/config/option"
	"github.com/dshills/modalcore/internal/engine/buffer"
	"github.com/dshills/modalcore/internal/engine/cursor"
)

// Mode names understood by the built-in commands.
const (
	ModeNormal = "normal"
	ModeVisual = "visual"
)

// Host errors.
var (
	// ErrUnknownAction indicates the host has no action with the given ID.
	ErrUnknownAction = errors.New("editor: unknown action")

	// ErrOutOfBounds indicates a position outside the document.
	ErrOutOfBounds = errors.New("editor: position out of bounds")

	// ErrUnknownMode indicates a mode name the host does not support.
	ErrUnknownMode = errors.New("editor: unknown mode")
)

// CursorService moves the caret and does bounded position arithmetic.
type CursorService interface {
	buffer.Shifter

	// Position returns the caret position.
	Position() buffer.Position

	// SetPosition moves the caret. When keepSelection is false the active
	// selection is dropped.
	SetPosition(p buffer.Position, keepSelection bool)
}

// SelectionService reads and replaces the active selection.
type SelectionService interface {
	// Selection returns the active selection, or nil when there is none.
	Selection() cursor.Selection

	// SetSelection replaces the active selection. A nil selection clears it.
	SetSelection(sel cursor.Selection)
}

// HostActions runs named host commands such as "editor.delete".
type HostActions interface {
	// Dispatch runs the action. It returns an error wrapping
	// ErrUnknownAction when the ID is not registered.
	Dispatch(actionID string) error
}

// Content gives read access to the document characters.
type Content interface {
	// TextLength returns the number of characters in the document.
	TextLength() int

	// CharAt returns the character at offset, or false when out of range.
	CharAt(offset int) (rune, bool)
}

// MarkService records named positions.
type MarkService interface {
	SetMark(name string, p buffer.Position)
	Mark(name string) (buffer.Position, bool)
}

// Adaptor is the full host surface a command executes against.
type Adaptor interface {
	CursorService
	SelectionService
	Content

	// Configuration returns the host's option reader.
	Configuration() option.Reader

	// Actions returns the host action dispatcher.
	Actions() HostActions

	// Marks returns the host mark table.
	Marks() MarkService

	// ChangeMode switches the editor to the named mode.
	ChangeMode(name string) error

	// CurrentMode returns the active mode name.
	CurrentMode() string
}

// TextInserter is implemented by hosts that accept typed text. Sessions use
// it for unbound keys in inserting modes.
type TextInserter interface {
	InsertText(s string)
}
