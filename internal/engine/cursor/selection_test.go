package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/dshills/modalcore/internal/config/option"
	"github.com/dshills/modalcore/internal/engine/buffer"
)

// fakeContext clamps shifts to [0, length].
type fakeContext struct {
	length int
	opts   option.Map
}

func (f fakeContext) ShiftPosition(p buffer.Position, delta int, _ bool) buffer.Position {
	n := p.ModelOffset() + delta
	if n < 0 {
		n = 0
	}
	if n > f.length {
		n = f.length
	}
	return buffer.NewPosition(n)
}

func (f fakeContext) Configuration() option.Reader { return f.opts }

func inclusiveCtx() fakeContext {
	return fakeContext{length: 100, opts: option.Map{option.Selection: option.SelectionInclusive}}
}

func exclusiveCtx() fakeContext {
	return fakeContext{length: 100, opts: option.Map{option.Selection: option.SelectionExclusive}}
}

func TestSelectionFromRangeForward(t *testing.T) {
	ctx := inclusiveCtx()
	sel := SelectionFromRange(ctx, true, buffer.NewOffsetRange(4, 7))

	assert.Equal(t, 4, sel.From().ModelOffset())
	assert.Equal(t, 6, sel.To().ModelOffset())
	assert.Equal(t, 4, sel.StartMark().ModelOffset())
	assert.Equal(t, 6, sel.EndMark().ModelOffset())
	assert.Equal(t, 3, sel.Range().ModelLength())
	assert.False(t, sel.IsReversed())
	assert.Equal(t, Text, sel.ContentType())
}

func TestSelectionFromRangeReversed(t *testing.T) {
	ctx := inclusiveCtx()
	sel := SelectionFromRange(ctx, true, buffer.NewOffsetRange(7, 4))

	assert.True(t, sel.IsReversed())
	assert.Equal(t, 6, sel.From().ModelOffset())
	assert.Equal(t, 4, sel.To().ModelOffset())
	assert.Equal(t, 4, sel.StartMark().ModelOffset())
	assert.Equal(t, 6, sel.EndMark().ModelOffset())
}

func TestSelectionFromRangeExclusive(t *testing.T) {
	ctx := exclusiveCtx()
	sel := SelectionFromRange(ctx, false, buffer.NewOffsetRange(4, 7))
	assert.Equal(t, 4, sel.From().ModelOffset())
	assert.Equal(t, 7, sel.To().ModelOffset())
}

func TestSelectionFromEmptyRange(t *testing.T) {
	ctx := inclusiveCtx()
	sel := SelectionFromRange(ctx, true, buffer.NewOffsetRange(5, 5))
	assert.Equal(t, 5, sel.From().ModelOffset())
	assert.Equal(t, 5, sel.To().ModelOffset())
	assert.Equal(t, 0, sel.Range().ModelLength())
}

func TestExclusiveSelection(t *testing.T) {
	r := buffer.NewOffsetRange(9, 2)
	sel := ExclusiveSelection(r)
	assert.Equal(t, r, sel.Range())
	assert.Equal(t, 9, sel.From().ModelOffset())
	assert.Equal(t, 2, sel.To().ModelOffset())
	assert.Equal(t, 2, sel.StartMark().ModelOffset())
	assert.Equal(t, 9, sel.EndMark().ModelOffset())
}

func TestSelectMarks(t *testing.T) {
	tests := []struct {
		name      string
		ctx       fakeContext
		receiver  buffer.TextRange
		start     int
		end       int
		wantStart int
		wantEnd   int
		wantFrom  int
		wantTo    int
	}{
		{"inclusive forward", inclusiveCtx(), buffer.NewOffsetRange(0, 1), 4, 6, 4, 7, 4, 6},
		{"inclusive reversed", inclusiveCtx(), buffer.NewOffsetRange(1, 0), 4, 6, 7, 4, 6, 4},
		{"exclusive forward", exclusiveCtx(), buffer.NewOffsetRange(0, 1), 4, 6, 4, 6, 4, 6},
		{"exclusive reversed", exclusiveCtx(), buffer.NewOffsetRange(1, 0), 4, 6, 6, 4, 6, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recv := ExclusiveSelection(tt.receiver)
			sel := recv.SelectMarks(tt.ctx, buffer.NewPosition(tt.start), buffer.NewPosition(tt.end))
			assert.Equal(t, tt.wantStart, sel.Range().Start().ModelOffset())
			assert.Equal(t, tt.wantEnd, sel.Range().End().ModelOffset())
			assert.Equal(t, tt.wantFrom, sel.From().ModelOffset())
			assert.Equal(t, tt.wantTo, sel.To().ModelOffset())
			assert.Equal(t, tt.receiver.IsReversed(), sel.IsReversed())
		})
	}
}

func TestSelectMarksRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		inclusive := rapid.Bool().Draw(t, "inclusive")
		a := rapid.IntRange(0, 90).Draw(t, "a")
		b := rapid.IntRange(0, 90).Draw(t, "b")
		if a == b {
			b++
		}

		ctx := exclusiveCtx()
		if inclusive {
			ctx = inclusiveCtx()
		}
		r := buffer.NewOffsetRange(a, b)
		sel := SelectionFromRange(ctx, inclusive, r)
		again := sel.SelectMarks(ctx, sel.StartMark(), sel.EndMark())

		if again.Range() != r {
			t.Fatalf("range %s != %s", again.Range(), r)
		}
		if again.From() != sel.From() || again.To() != sel.To() {
			t.Fatalf("anchors %s/%s != %s/%s", again.From(), again.To(), sel.From(), sel.To())
		}
	})
}

func TestInclusiveCorrectionProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.IntRange(0, 100).Draw(t, "a")
		b := rapid.IntRange(0, 100).Draw(t, "b")
		r := buffer.NewOffsetRange(a, b)
		sel := SelectionFromRange(inclusiveCtx(), true, r)
		if r.ModelLength() == 0 {
			if sel.From() != r.Start() || sel.To() != r.End() {
				t.Fatalf("empty range anchors moved")
			}
			return
		}
		if r.IsReversed() {
			if sel.From().ModelOffset() != a-1 || sel.To() != r.End() {
				t.Fatalf("reversed correction wrong: %s", sel)
			}
		} else if sel.To().ModelOffset() != b-1 || sel.From() != r.Start() {
			t.Fatalf("forward correction wrong: %s", sel)
		}
	})
}

func TestContentTypeString(t *testing.T) {
	assert.Equal(t, "text", Text.String())
	assert.Equal(t, "lines", Lines.String())
	assert.Equal(t, "block", Block.String())
	assert.Equal(t, "ContentType(9)", ContentType(9).String())
}
