package vim

import (
	"github.com/dshills/modalcore/internal/command"
	"github.com/dshills/modalcore/internal/config/option"
	"github.com/dshills/modalcore/internal/editor"
	"github.com/dshills/modalcore/internal/engine/buffer"
	"github.com/dshills/modalcore/internal/engine/cursor"
)

// TextObject represents a Vim text object.
// Text objects select regions of text based on structure rather than motion.
type TextObject struct {
	// Name is the text object identifier (e.g., "word", "WORD").
	Name string

	// Key is the key that identifies this text object type.
	Key rune

	// Big selects whitespace-delimited WORDs.
	Big bool
}

// Standard Vim text objects.
var (
	TextObjWord = TextObject{Name: "word", Key: 'w'}
	TextObjWORD = TextObject{Name: "WORD", Key: 'W', Big: true}
)

// TextObjects returns every standard text object.
func TextObjects() []TextObject {
	return []TextObject{TextObjWord, TextObjWORD}
}

// Inner returns the "i" variant, which excludes surrounding blanks.
func (o TextObject) Inner() command.TextObject {
	return objectRegion{obj: o}
}

// Around returns the "a" variant, which includes surrounding blanks.
func (o TextObject) Around() command.TextObject {
	return objectRegion{obj: o, around: true}
}

type objectRegion struct {
	obj    TextObject
	around bool
}

func (r objectRegion) String() string {
	if r.around {
		return "around" + r.obj.Name
	}
	return "inner" + r.obj.Name
}

func (r objectRegion) ContentType(option.Reader) cursor.ContentType {
	return cursor.Text
}

// Region selects count words (or blank runs) starting at the run under the
// caret. The around variant adds the blanks after each word, or the blanks
// before the first word when none follow.
func (r objectRegion) Region(ed editor.Adaptor, count int) (buffer.TextRange, error) {
	p := ed.Position().ModelOffset()
	big := r.obj.Big
	if classAt(ed, p, big) == classNewline {
		return buffer.NewOffsetRange(p, p), nil
	}

	start := runStart(ed, p, big)
	end := p
	for i := 0; i < command.Effective(count); i++ {
		if classAt(ed, end, big) == classNewline {
			break
		}
		blank := classAt(ed, end, big) == classBlank
		end = runEnd(ed, end, big)
		if r.around && classAt(ed, end, big) != classNewline {
			// pair each word with the blanks after it, and each blank run
			// with the word after it
			if blank || classAt(ed, end, big) == classBlank {
				end = runEnd(ed, end, big)
			}
		}
	}

	if r.around && classAt(ed, end-1, big) != classBlank && classAt(ed, start, big) != classBlank {
		for start > 0 && classAt(ed, start-1, big) == classBlank {
			start--
		}
	}
	return buffer.NewOffsetRange(start, end), nil
}

// runStart returns the first offset of the same-class run containing offset.
func runStart(c editor.Content, offset int, big bool) int {
	cls := classAt(c, offset, big)
	for offset > 0 && classAt(c, offset-1, big) == cls {
		offset--
	}
	return offset
}

// runEnd returns the offset just past the same-class run containing offset.
func runEnd(c editor.Content, offset int, big bool) int {
	cls := classAt(c, offset, big)
	n := c.TextLength()
	for offset < n && classAt(c, offset, big) == cls {
		offset++
	}
	return offset
}
