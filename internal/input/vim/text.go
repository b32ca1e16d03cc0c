package vim

import (
	"unicode"

	"github.com/dshills/modalcore/internal/editor"
)

// charClass groups characters for word motions.
type charClass uint8

const (
	classBlank charClass = iota
	classPunct
	classWord
	classNewline
)

func classify(r rune, big bool) charClass {
	switch {
	case r == '\n':
		return classNewline
	case unicode.IsSpace(r):
		return classBlank
	case big:
		return classWord
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return classWord
	default:
		return classPunct
	}
}

// classAt returns the class at offset; out-of-range offsets are newlines.
func classAt(c editor.Content, offset int, big bool) charClass {
	r, ok := c.CharAt(offset)
	if !ok {
		return classNewline
	}
	return classify(r, big)
}

func isNewline(c editor.Content, offset int) bool {
	r, ok := c.CharAt(offset)
	return ok && r == '\n'
}

// lineStart returns the first offset of the line containing offset.
func lineStart(c editor.Content, offset int) int {
	if offset > c.TextLength() {
		offset = c.TextLength()
	}
	for offset > 0 && !isNewline(c, offset-1) {
		offset--
	}
	return offset
}

// lineEnd returns the offset of the newline ending the line, or TextLength.
func lineEnd(c editor.Content, offset int) int {
	n := c.TextLength()
	if offset < 0 {
		offset = 0
	}
	for offset < n && !isNewline(c, offset) {
		offset++
	}
	return offset
}

// lastChar returns the offset of the last character of the line, or the
// line start for an empty line.
func lastChar(c editor.Content, offset int) int {
	ls, le := lineStart(c, offset), lineEnd(c, offset)
	if le > ls {
		return le - 1
	}
	return ls
}

func firstNonBlank(c editor.Content, offset int) int {
	i, le := lineStart(c, offset), lineEnd(c, offset)
	for i < le && classAt(c, i, false) == classBlank {
		i++
	}
	return i
}

// nextLine returns the start of the line after the one containing offset.
func nextLine(c editor.Content, offset int) (int, bool) {
	le := lineEnd(c, offset)
	if le >= c.TextLength() {
		return 0, false
	}
	return le + 1, true
}

// prevLine returns the start of the line before the one containing offset.
func prevLine(c editor.Content, offset int) (int, bool) {
	ls := lineStart(c, offset)
	if ls == 0 {
		return 0, false
	}
	return lineStart(c, ls-1), true
}

// lineNumber returns the start of the 1-based line n, clamped to the last line.
func lineNumber(c editor.Content, n int) int {
	start := 0
	for i := 1; i < n; i++ {
		next, ok := nextLine(c, start)
		if !ok {
			break
		}
		start = next
	}
	return start
}

// withColumn returns the offset at column col of the line starting at ls,
// clamped to the line's last character.
func withColumn(c editor.Content, ls, col int) int {
	le := lineEnd(c, ls)
	if ls+col < le {
		return ls + col
	}
	return lastChar(c, ls)
}
