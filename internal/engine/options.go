package engine

import (
	"github.com/dshills/modalcore/internal/config/option"
	"github.com/dshills/modalcore/internal/editor"
)

// Default configuration values.
const (
	DefaultTabWidth = 4
	DefaultIndent   = "\t"
	DefaultMode     = editor.ModeNormal
)

// Option configures a Document during creation.
type Option func(*Document)

// WithContent sets the initial text.
func WithContent(content string) Option {
	return func(d *Document) {
		d.text = []rune(content)
	}
}

// WithOptions sets the option reader returned by Configuration.
func WithOptions(opts option.Reader) Option {
	return func(d *Document) {
		if opts != nil {
			d.opts = opts
		}
	}
}

// WithIndent sets the text inserted by editor.indentRight.
func WithIndent(indent string) Option {
	return func(d *Document) {
		if indent != "" {
			d.indent = indent
		}
	}
}

// WithMode sets the initial mode.
func WithMode(name string) Option {
	return func(d *Document) {
		d.mode = name
	}
}
