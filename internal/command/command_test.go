package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/modalcore/internal/config/option"
	"github.com/dshills/modalcore/internal/editor"
	"github.com/dshills/modalcore/internal/engine"
	"github.com/dshills/modalcore/internal/engine/buffer"
	"github.com/dshills/modalcore/internal/engine/cursor"
	"github.com/dshills/modalcore/internal/input/key"
	"github.com/dshills/modalcore/internal/input/state"
)

var errBoom = errors.New("boom")

type recorder struct {
	calls  []int
	err    error
	repeat bool
}

func (r *recorder) Execute(_ editor.Adaptor, count int) error {
	r.calls = append(r.calls, count)
	return r.err
}

func (r *recorder) Repeatable() bool { return r.repeat }

func TestSeqRunsInOrderWithSameCount(t *testing.T) {
	var order []string
	step := func(name string) Command {
		return Func{Name: name, Fn: func(_ editor.Adaptor, count int) error {
			assert.Equal(t, 4, count)
			order = append(order, name)
			return nil
		}}
	}
	cmd := Seq(step("a"), step("b"), step("c"))
	require.NoError(t, cmd.Execute(engine.New(), 4))
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, "seq(a, b, c)", Describe(cmd))
}

func TestSeqAbortsOnFirstFailure(t *testing.T) {
	first := &recorder{}
	second := &recorder{err: errBoom}
	third := &recorder{}

	err := Seq(first, second, third).Execute(engine.New(), NoCount)
	require.Error(t, err)

	var execErr *ExecutionError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, 1, execErr.Step)
	assert.True(t, errors.Is(err, errBoom))
	assert.Len(t, first.calls, 1)
	assert.Len(t, second.calls, 1)
	assert.Empty(t, third.calls)
}

func TestSeqRepeatable(t *testing.T) {
	assert.False(t, Seq(&recorder{}, &recorder{}).Repeatable())
	assert.True(t, Seq(&recorder{}, &recorder{repeat: true}).Repeatable())
	assert.False(t, Seq().Repeatable())
}

func TestDontRepeat(t *testing.T) {
	inner := &recorder{repeat: true}
	cmd := DontRepeat(inner)
	assert.False(t, cmd.Repeatable())
	require.NoError(t, cmd.Execute(engine.New(), 3))
	assert.Equal(t, []int{3}, inner.calls)
}

func TestCountIgnoring(t *testing.T) {
	ran := false
	cmd := CountIgnoring("probe", func(editor.Adaptor) error {
		ran = true
		return nil
	})
	require.NoError(t, cmd.Execute(engine.New(), 9))
	assert.True(t, ran)
	assert.False(t, cmd.Repeatable())
	assert.Equal(t, "probe", Describe(cmd))
}

func TestHostAction(t *testing.T) {
	d := engine.New()
	calls := 0
	require.NoError(t, d.RegisterAction("test.tick", func(*engine.Document) error {
		calls++
		return nil
	}))

	cmd := HostAction("test.tick")
	require.NoError(t, cmd.Execute(d, NoCount))
	assert.Equal(t, 1, calls)
	require.NoError(t, cmd.Execute(d, 3))
	assert.Equal(t, 4, calls)
	assert.True(t, cmd.Repeatable())

	id, ok := ActionID(cmd)
	assert.True(t, ok)
	assert.Equal(t, "test.tick", id)

	err := HostAction("test.missing").Execute(d, NoCount)
	assert.True(t, errors.Is(err, editor.ErrUnknownAction))
}

func TestHostActionCountIsBounded(t *testing.T) {
	d := engine.New()
	calls := 0
	require.NoError(t, d.RegisterAction("test.tick", func(*engine.Document) error {
		calls++
		return nil
	}))

	require.NoError(t, HostAction("test.tick").Execute(d, 999999999))
	assert.Equal(t, MaxRepeat, calls)
}

func TestRepeatMarker(t *testing.T) {
	assert.True(t, IsRepeat(Repeat))
	assert.False(t, IsRepeat(HostAction("x")))
	assert.False(t, Repeat.Repeatable())
	assert.NoError(t, Repeat.Execute(engine.New(), NoCount))
}

func TestEffective(t *testing.T) {
	assert.Equal(t, 1, Effective(NoCount))
	assert.Equal(t, 7, Effective(7))
}

func TestSwitchMode(t *testing.T) {
	d := engine.New()
	require.NoError(t, SwitchMode(editor.ModeVisual).Execute(d, NoCount))
	assert.Equal(t, editor.ModeVisual, d.CurrentMode())
	assert.Error(t, SwitchMode("bogus").Execute(d, NoCount))
}

// fixedRegion is a text object returning a constant range.
type fixedRegion struct {
	r     buffer.TextRange
	err   error
	count *int
}

func (f fixedRegion) Region(_ editor.Adaptor, count int) (buffer.TextRange, error) {
	if f.count != nil {
		*f.count = count
	}
	return f.r, f.err
}

func (f fixedRegion) ContentType(option.Reader) cursor.ContentType { return cursor.Text }

func (f fixedRegion) Target(_ editor.Adaptor, _ int) (buffer.Position, error) {
	return f.r.End(), f.err
}

func (f fixedRegion) String() string { return "fixed" }

func TestOperatorCmds(t *testing.T) {
	var seen int
	motions := state.New(
		state.Leaf[TextObject](key.Rune('w'), fixedRegion{r: buffer.NewOffsetRange(0, 6), count: &seen}),
		state.Transition(key.Rune('i'),
			state.Leaf[TextObject](key.Rune('w'), fixedRegion{r: buffer.NewOffsetRange(6, 11)}),
		),
	)
	root := state.New(OperatorCmds(key.Rune('d'), OnSelection(HostAction(engine.ActionDelete)), motions))

	n, ok := root.Lookup(key.Runes("dw"))
	require.True(t, ok)
	require.True(t, n.IsLeaf())

	d := engine.New(engine.WithContent("hello world"))
	require.NoError(t, n.Payload().Execute(d, 3))
	assert.Equal(t, 3, seen)
	assert.Equal(t, "world", d.Text())
	assert.True(t, n.Payload().Repeatable())

	n, ok = root.Lookup(key.Runes("diw"))
	require.True(t, ok)
	d = engine.New(engine.WithContent("hello world"))
	require.NoError(t, n.Payload().Execute(d, NoCount))
	assert.Equal(t, "hello ", d.Text())
}

func TestPrefixedOperatorCmds(t *testing.T) {
	motions := state.New(
		state.Leaf[TextObject](key.Rune('w'), fixedRegion{r: buffer.NewOffsetRange(0, 5)}),
	)
	root := state.New(PrefixedOperatorCmds(key.Rune('g'), key.Rune('U'), OnSelection(HostAction(engine.ActionToUpper)), motions))

	n, ok := root.Lookup(key.Runes("gUw"))
	require.True(t, ok)
	d := engine.New(engine.WithContent("hello world"))
	require.NoError(t, n.Payload().Execute(d, NoCount))
	assert.Equal(t, "HELLO world", d.Text())

	_, ok = root.Lookup(key.Runes("Uw"))
	assert.False(t, ok)
}

func TestOperatorMotionFailure(t *testing.T) {
	cmd := Compose(OnSelection(HostAction(engine.ActionDelete)), fixedRegion{err: errBoom})
	err := cmd.Execute(engine.New(engine.WithContent("abc")), NoCount)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMotionFailed))
	assert.True(t, errors.Is(err, errBoom))
}

func TestOnSelectionSetsExclusiveSelection(t *testing.T) {
	var got cursor.Selection
	op := OnSelection(CountIgnoring("capture", func(ed editor.Adaptor) error {
		got = ed.Selection()
		return nil
	}))
	r := buffer.NewOffsetRange(2, 5)
	require.NoError(t, op.Operate(engine.New(engine.WithContent("abcdefg")), NoCount, r, cursor.Text))
	require.NotNil(t, got)
	assert.Equal(t, r, got.Range())
	assert.Equal(t, 5, got.To().ModelOffset())
}

func TestMoveCaret(t *testing.T) {
	d := engine.New(engine.WithContent("hello world"))
	require.NoError(t, MoveCaret(fixedRegion{r: buffer.NewOffsetRange(0, 6)}).Execute(d, NoCount))
	assert.Equal(t, 6, d.Position().ModelOffset())

	err := MoveCaret(fixedRegion{err: errBoom}).Execute(d, NoCount)
	assert.True(t, errors.Is(err, ErrMotionFailed))
}

func TestWithoutCount(t *testing.T) {
	inner := &recorder{repeat: true}
	cmd := WithoutCount(inner)
	require.NoError(t, cmd.Execute(engine.New(), 5))
	assert.Equal(t, []int{NoCount}, inner.calls)
	assert.True(t, cmd.Repeatable())
}
