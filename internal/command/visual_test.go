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
)

func TestEnterVisual(t *testing.T) {
	d := engine.New(engine.WithContent("hello"))
	d.SetPosition(buffer.NewPosition(1), false)
	require.NoError(t, EnterVisual.Execute(d, NoCount))

	assert.Equal(t, editor.ModeVisual, d.CurrentMode())
	sel := d.Selection()
	require.NotNil(t, sel)
	assert.Equal(t, 1, sel.Range().ModelLength())
	assert.Equal(t, 1, sel.From().ModelOffset())
	assert.Equal(t, 1, sel.To().ModelOffset())
}

func TestExtendSelectionForwardAndBack(t *testing.T) {
	d := engine.New(engine.WithContent("hello world"))
	d.SetPosition(buffer.NewPosition(4), false)
	require.NoError(t, EnterVisual.Execute(d, NoCount))

	require.NoError(t, ExtendSelection(fixedRegion{r: buffer.NewOffsetRange(4, 7)}).Execute(d, NoCount))
	sel := d.Selection()
	assert.Equal(t, 4, sel.Range().Start().ModelOffset())
	assert.Equal(t, 8, sel.Range().End().ModelOffset())
	assert.Equal(t, 7, sel.To().ModelOffset())
	assert.Equal(t, 7, d.Position().ModelOffset())

	require.NoError(t, ExtendSelection(fixedRegion{r: buffer.NewOffsetRange(7, 1)}).Execute(d, NoCount))
	sel = d.Selection()
	assert.True(t, sel.IsReversed())
	assert.Equal(t, 4, sel.From().ModelOffset())
	assert.Equal(t, 1, sel.To().ModelOffset())
	assert.Equal(t, 4, sel.Range().ModelLength())
}

func TestExtendSelectionExclusive(t *testing.T) {
	d := engine.New(
		engine.WithContent("hello world"),
		engine.WithOptions(option.Map{option.Selection: option.SelectionExclusive}),
	)
	d.SetPosition(buffer.NewPosition(2), false)
	require.NoError(t, EnterVisual.Execute(d, NoCount))
	assert.Equal(t, 0, d.Selection().Range().ModelLength())

	require.NoError(t, ExtendSelection(fixedRegion{r: buffer.NewOffsetRange(2, 6)}).Execute(d, NoCount))
	assert.Equal(t, 4, d.Selection().Range().ModelLength())
	assert.Equal(t, 6, d.Selection().To().ModelOffset())
}

func TestSelectObject(t *testing.T) {
	d := engine.New(engine.WithContent("hello world"))
	require.NoError(t, SelectObject(fixedRegion{r: buffer.NewOffsetRange(6, 11)}).Execute(d, NoCount))
	sel := d.Selection()
	assert.Equal(t, 6, sel.From().ModelOffset())
	assert.Equal(t, 10, sel.To().ModelOffset())
}

func TestLeaveVisualRecordsMarks(t *testing.T) {
	d := engine.New(engine.WithContent("hello world"))
	d.SetPosition(buffer.NewPosition(2), false)
	require.NoError(t, EnterVisual.Execute(d, NoCount))
	require.NoError(t, ExtendSelection(fixedRegion{r: buffer.NewOffsetRange(2, 6)}).Execute(d, NoCount))

	require.NoError(t, LeaveVisual.Execute(d, NoCount))
	assert.Equal(t, editor.ModeNormal, d.CurrentMode())
	assert.Nil(t, d.Selection())
	assert.Equal(t, 6, d.Position().ModelOffset())

	start, ok := d.Marks().Mark(buffer.LastSelectionStart)
	require.True(t, ok)
	end, ok := d.Marks().Mark(buffer.LastSelectionEnd)
	require.True(t, ok)
	assert.Equal(t, 2, start.ModelOffset())
	assert.Equal(t, 6, end.ModelOffset())
}

func TestReselect(t *testing.T) {
	d := engine.New(engine.WithContent("hello world"))
	err := Reselect.Execute(d, NoCount)
	assert.True(t, errors.Is(err, ErrNoPreviousSelection))

	d.SetPosition(buffer.NewPosition(6), false)
	require.NoError(t, EnterVisual.Execute(d, NoCount))
	require.NoError(t, ExtendSelection(fixedRegion{r: buffer.NewOffsetRange(6, 2)}).Execute(d, NoCount))
	before := d.Selection()
	require.NoError(t, LeaveVisual.Execute(d, NoCount))

	require.NoError(t, Reselect.Execute(d, NoCount))
	after := d.Selection()
	require.NotNil(t, after)
	assert.Equal(t, editor.ModeVisual, d.CurrentMode())
	assert.Equal(t, before.Range(), after.Range())
	assert.Equal(t, before.From(), after.From())
	assert.Equal(t, before.To(), after.To())
}

func TestDeselect(t *testing.T) {
	d := engine.New(engine.WithContent("hello world"))
	d.SetPosition(buffer.NewPosition(1), false)
	require.NoError(t, EnterVisual.Execute(d, NoCount))
	require.NoError(t, ExtendSelection(fixedRegion{r: buffer.NewOffsetRange(1, 4)}).Execute(d, NoCount))
	require.NoError(t, Deselect.Execute(d, NoCount))
	assert.Nil(t, d.Selection())
	assert.Equal(t, 4, d.Position().ModelOffset())
}
