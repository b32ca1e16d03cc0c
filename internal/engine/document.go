package engine

import (
	"fmt"
	"sort"

	"github.com/dshills/modalcore/internal/config/option"
	"github.com/dshills/modalcore/internal/editor"
	"github.com/dshills/modalcore/internal/engine/buffer"
	"github.com/dshills/modalcore/internal/engine/cursor"
)

// ModeInsert is the insert mode name. The modal core has no bindings for it;
// keys that do not resolve there are typed into the document.
const ModeInsert = "insert"

// ActionFunc implements a host action.
type ActionFunc func(d *Document) error

// Document is an in-memory host editor.
type Document struct {
	text     []rune
	caret    buffer.Position
	sel      cursor.Selection
	marks    *buffer.MarkTable
	opts     option.Reader
	mode     string
	indent   string
	register string
	actions  map[string]ActionFunc
}

// New creates a document.
func New(opts ...Option) *Document {
	d := &Document{
		marks:   buffer.NewMarkTable(),
		opts:    option.Map{option.Selection: option.SelectionInclusive},
		mode:    DefaultMode,
		indent:  DefaultIndent,
		actions: make(map[string]ActionFunc),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.registerBuiltins()
	return d
}

// Text returns the document content.
func (d *Document) Text() string {
	return string(d.text)
}

// SetText replaces the content. The caret is clamped and the selection dropped.
func (d *Document) SetText(s string) {
	d.text = []rune(s)
	d.sel = nil
	d.caret = d.clamp(d.caret.ModelOffset())
}

// Register returns the text saved by the last delete, change or yank.
func (d *Document) Register() string {
	return d.register
}

// InsertText types s at the caret and moves the caret past it.
func (d *Document) InsertText(s string) {
	at := d.caret.ModelOffset()
	rs := []rune(s)
	d.replace(at, at, rs)
	d.caret = buffer.NewPosition(at + len(rs))
}

// ReplaceRange replaces the characters in [start, end) with s. The caret is
// kept in bounds.
func (d *Document) ReplaceRange(start, end int, s string) error {
	if start < 0 || end < start || end > len(d.text) {
		return fmt.Errorf("%w: [%d, %d) in %d", editor.ErrOutOfBounds, start, end, len(d.text))
	}
	d.replace(start, end, []rune(s))
	d.caret = d.clamp(d.caret.ModelOffset())
	return nil
}

// TextLength returns the number of characters.
func (d *Document) TextLength() int {
	return len(d.text)
}

// CharAt returns the character at offset.
func (d *Document) CharAt(offset int) (rune, bool) {
	if offset < 0 || offset >= len(d.text) {
		return 0, false
	}
	return d.text[offset], true
}

// ShiftPosition moves p by delta characters, clamped to [0, TextLength].
// Without allowPastEnd the result steps back off a line end, unless the line
// is empty.
func (d *Document) ShiftPosition(p buffer.Position, delta int, allowPastEnd bool) buffer.Position {
	n := p.ModelOffset() + delta
	if n < 0 {
		n = 0
	}
	if n > len(d.text) {
		n = len(d.text)
	}
	if !allowPastEnd && d.atLineEnd(n) && n > d.LineStart(n) {
		n--
	}
	return buffer.NewPosition(n)
}

// Position returns the caret.
func (d *Document) Position() buffer.Position {
	return d.caret
}

// SetPosition moves the caret.
func (d *Document) SetPosition(p buffer.Position, keepSelection bool) {
	d.caret = d.clamp(p.ModelOffset())
	if !keepSelection {
		d.sel = nil
	}
}

// Selection returns the active selection.
func (d *Document) Selection() cursor.Selection {
	return d.sel
}

// SetSelection replaces the active selection and moves the caret to its
// caret end.
func (d *Document) SetSelection(sel cursor.Selection) {
	d.sel = sel
	if sel != nil {
		d.caret = d.clamp(sel.To().ModelOffset())
	}
}

// Configuration returns the option reader.
func (d *Document) Configuration() option.Reader {
	return d.opts
}

// Actions returns the document as its own action dispatcher.
func (d *Document) Actions() editor.HostActions {
	return d
}

// Marks returns the mark table.
func (d *Document) Marks() editor.MarkService {
	return d.marks
}

// MarkTable returns the mark table for inspection.
func (d *Document) MarkTable() *buffer.MarkTable {
	return d.marks
}

// ChangeMode switches mode. Normal and insert mode drop the selection.
func (d *Document) ChangeMode(name string) error {
	switch name {
	case editor.ModeNormal, ModeInsert:
		d.sel = nil
	case editor.ModeVisual:
	default:
		return fmt.Errorf("%w: %q", editor.ErrUnknownMode, name)
	}
	d.mode = name
	return nil
}

// CurrentMode returns the active mode.
func (d *Document) CurrentMode() string {
	return d.mode
}

// RegisterAction adds a host action.
func (d *Document) RegisterAction(id string, fn ActionFunc) error {
	if _, exists := d.actions[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateAction, id)
	}
	d.actions[id] = fn
	return nil
}

// ActionIDs returns the registered action IDs in sorted order.
func (d *Document) ActionIDs() []string {
	ids := make([]string, 0, len(d.actions))
	for id := range d.actions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Dispatch runs a registered action.
func (d *Document) Dispatch(actionID string) error {
	fn, ok := d.actions[actionID]
	if !ok {
		return fmt.Errorf("%w: %q", editor.ErrUnknownAction, actionID)
	}
	return fn(d)
}

// LineStart returns the offset of the first character of the line
// containing offset.
func (d *Document) LineStart(offset int) int {
	if offset > len(d.text) {
		offset = len(d.text)
	}
	for offset > 0 && d.text[offset-1] != '\n' {
		offset--
	}
	return offset
}

// LineEnd returns the offset of the newline ending the line containing
// offset, or TextLength for the last line.
func (d *Document) LineEnd(offset int) int {
	if offset < 0 {
		offset = 0
	}
	for offset < len(d.text) && d.text[offset] != '\n' {
		offset++
	}
	return offset
}

func (d *Document) atLineEnd(n int) bool {
	return n >= len(d.text) || d.text[n] == '\n'
}

func (d *Document) clamp(n int) buffer.Position {
	if n < 0 {
		n = 0
	}
	if n > len(d.text) {
		n = len(d.text)
	}
	return buffer.NewPosition(n)
}

// replace swaps text[start:end] for rs.
func (d *Document) replace(start, end int, rs []rune) {
	out := make([]rune, 0, len(d.text)-(end-start)+len(rs))
	out = append(out, d.text[:start]...)
	out = append(out, rs...)
	out = append(out, d.text[end:]...)
	d.text = out
}

var _ editor.Adaptor = (*Document)(nil)
var _ editor.TextInserter = (*Document)(nil)
