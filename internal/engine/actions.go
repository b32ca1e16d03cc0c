package engine

import (
	"strings"
	"unicode"

	"github.com/dshills/modalcore/internal/editor"
	"github.com/dshills/modalcore/internal/engine/buffer"
)

// Built-in action IDs.
const (
	ActionDelete      = "editor.delete"
	ActionChange      = "editor.change"
	ActionYank        = "editor.yank"
	ActionToLower     = "editor.toLower"
	ActionToUpper     = "editor.toUpper"
	ActionToggleCase  = "editor.toggleCase"
	ActionIndentRight = "editor.indentRight"
	ActionIndentLeft  = "editor.indentLeft"
	ActionFormat      = "editor.format"
)

func (d *Document) registerBuiltins() {
	builtins := map[string]ActionFunc{
		ActionDelete:      (*Document).deleteSelection,
		ActionChange:      (*Document).changeSelection,
		ActionYank:        (*Document).yankSelection,
		ActionToLower:     mapCase(unicode.ToLower),
		ActionToUpper:     mapCase(unicode.ToUpper),
		ActionToggleCase:  mapCase(toggleCase),
		ActionIndentRight: (*Document).indentRight,
		ActionIndentLeft:  (*Document).indentLeft,
		ActionFormat:      (*Document).format,
	}
	for id, fn := range builtins {
		d.actions[id] = fn
	}
}

// selected returns the bounds of the active selection.
func (d *Document) selected() (int, int, error) {
	if d.sel == nil {
		return 0, 0, ErrNoSelection
	}
	r := d.sel.Range()
	start := d.clamp(r.LeftBound().ModelOffset()).ModelOffset()
	end := d.clamp(r.RightBound().ModelOffset()).ModelOffset()
	return start, end, nil
}

// finish drops the selection and leaves the caret at offset.
func (d *Document) finish(offset int) {
	d.sel = nil
	d.caret = d.ShiftPosition(buffer.NewPosition(offset), 0, d.mode == ModeInsert)
}

func (d *Document) deleteSelection() error {
	start, end, err := d.selected()
	if err != nil {
		return err
	}
	d.register = string(d.text[start:end])
	d.replace(start, end, nil)
	d.finish(start)
	return nil
}

func (d *Document) changeSelection() error {
	start, _, err := d.selected()
	if err != nil {
		return err
	}
	if err := d.deleteSelection(); err != nil {
		return err
	}
	if err := d.ChangeMode(ModeInsert); err != nil {
		return err
	}
	d.caret = d.clamp(start)
	return nil
}

func (d *Document) yankSelection() error {
	start, end, err := d.selected()
	if err != nil {
		return err
	}
	d.register = string(d.text[start:end])
	d.finish(start)
	return nil
}

func mapCase(fn func(rune) rune) ActionFunc {
	return func(d *Document) error {
		start, end, err := d.selected()
		if err != nil {
			return err
		}
		for i := start; i < end; i++ {
			d.text[i] = fn(d.text[i])
		}
		d.finish(start)
		return nil
	}
}

func toggleCase(r rune) rune {
	if unicode.IsUpper(r) {
		return unicode.ToLower(r)
	}
	return unicode.ToUpper(r)
}

// lineStarts returns the start offsets of every line touched by
// [start, end), last line first.
func (d *Document) lineStarts(start, end int) []int {
	if end > start {
		end--
	}
	var starts []int
	for ls := d.LineStart(end); ; ls = d.LineStart(ls - 1) {
		starts = append(starts, ls)
		if ls <= start || ls == 0 {
			break
		}
	}
	return starts
}

func (d *Document) indentRight() error {
	start, end, err := d.selected()
	if err != nil {
		return err
	}
	indent := []rune(d.indent)
	for _, ls := range d.lineStarts(start, end) {
		if d.LineEnd(ls) == ls {
			continue
		}
		d.replace(ls, ls, indent)
	}
	d.finish(d.firstNonBlank(d.LineStart(start)))
	return nil
}

func (d *Document) indentLeft() error {
	start, end, err := d.selected()
	if err != nil {
		return err
	}
	width := len([]rune(d.indent))
	if d.indent == "\t" {
		width = DefaultTabWidth
	}
	for _, ls := range d.lineStarts(start, end) {
		n := 0
		if ls < len(d.text) && d.text[ls] == '\t' {
			n = 1
		} else {
			for n < width && ls+n < len(d.text) && d.text[ls+n] == ' ' {
				n++
			}
		}
		d.replace(ls, ls+n, nil)
	}
	d.finish(d.firstNonBlank(d.LineStart(start)))
	return nil
}

// format strips trailing blanks from every touched line.
func (d *Document) format() error {
	start, end, err := d.selected()
	if err != nil {
		return err
	}
	for _, ls := range d.lineStarts(start, end) {
		le := d.LineEnd(ls)
		line := string(d.text[ls:le])
		trimmed := []rune(strings.TrimRight(line, " \t"))
		d.replace(ls, le, trimmed)
	}
	d.finish(d.firstNonBlank(d.LineStart(start)))
	return nil
}

func (d *Document) firstNonBlank(ls int) int {
	i := ls
	for i < len(d.text) && (d.text[i] == ' ' || d.text[i] == '\t') {
		i++
	}
	return i
}

var _ editor.HostActions = (*Document)(nil)
