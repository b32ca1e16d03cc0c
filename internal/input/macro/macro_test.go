package macro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/modalcore/internal/command"
	"github.com/dshills/modalcore/internal/input/key"
)

func rec(r *Recorder, register rune, keys string) {
	if err := r.Start(register); err != nil {
		panic(err)
	}
	for _, st := range key.Runes(keys) {
		r.Record(st.Event())
	}
	r.Stop()
}

func TestNormalizeRegister(t *testing.T) {
	tests := []struct {
		in, want rune
	}{
		{'a', 'a'},
		{'z', 'z'},
		{'A', 'a'},
		{'5', '5'},
		{'"', 0},
		{'@', 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeRegister(tt.in), "register %q", tt.in)
	}
}

func TestRecorderStartStop(t *testing.T) {
	r := NewRecorder()
	assert.Equal(t, rune(0), r.Stop())

	require.NoError(t, r.Start('a'))
	reg, recording := r.Recording()
	assert.True(t, recording)
	assert.Equal(t, 'a', reg)

	assert.ErrorIs(t, r.Start('b'), ErrAlreadyRecording)

	r.Record(key.Rune('x').Event())
	r.Record(key.Rune('j').Event())
	assert.Equal(t, 'a', r.Stop())

	_, recording = r.Recording()
	assert.False(t, recording)
	assert.Len(t, r.Get('a'), 2)

	// Not recording.
	r.Record(key.Rune('k').Event())
	assert.Len(t, r.Get('a'), 2)
}

func TestRecorderInvalidRegister(t *testing.T) {
	r := NewRecorder()
	assert.ErrorIs(t, r.Start('!'), ErrInvalidRegister)
	assert.ErrorIs(t, r.Set('!', nil), ErrInvalidRegister)
}

func TestRecorderAppendAndReplace(t *testing.T) {
	r := NewRecorder()
	rec(r, 'a', "xx")
	rec(r, 'A', "j")
	assert.Equal(t, key.Runes("xxj").String(), seqOf(r.Get('a')))

	rec(r, 'a', "k")
	assert.Equal(t, "k", seqOf(r.Get('a')))

	// An empty recording clears the register.
	rec(r, 'a', "")
	assert.Empty(t, r.Get('a'))
	assert.Empty(t, r.Registers())
}

func TestRecorderGetReturnsCopy(t *testing.T) {
	r := NewRecorder()
	rec(r, 'q', "dd")

	evs := r.Get('q')
	evs[0] = key.Rune('z').Event()
	assert.Equal(t, "dd", seqOf(r.Get('q')))
}

func TestRecorderSetAndRegisters(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, r.Set('z', []key.Event{key.Rune('x').Event()}))
	require.NoError(t, r.Set('B', []key.Event{key.Rune('y').Event()}))
	require.NoError(t, r.Set('1', []key.Event{key.Rune('w').Event()}))
	assert.Equal(t, []rune{'1', 'b', 'z'}, r.Registers())

	require.NoError(t, r.Set('z', nil))
	assert.Equal(t, []rune{'1', 'b'}, r.Registers())
}

func TestRecorderLastPlayed(t *testing.T) {
	r := NewRecorder()
	assert.Equal(t, rune(0), r.LastPlayed())
	r.SetLastPlayed('c')
	assert.Equal(t, 'c', r.LastPlayed())
}

func TestBindings(t *testing.T) {
	b := Bindings()

	tests := []struct {
		keys string
		want command.Command
	}{
		{"qa", Record{Register: 'a'}},
		{"qA", Record{Register: 'A'}},
		{"q0", Record{Register: '0'}},
		{"@a", Play{Register: 'a'}},
		{"@9", Play{Register: '9'}},
		{"@@", Play{}},
	}
	for _, tt := range tests {
		t.Run(tt.keys, func(t *testing.T) {
			n, ok := b.Lookup(key.MustParseSequence(tt.keys))
			require.True(t, ok)
			require.True(t, n.IsLeaf())
			assert.Equal(t, tt.want, n.Payload())
		})
	}

	_, ok := b.Lookup(key.Runes("@A"))
	assert.False(t, ok)
}

func TestCommandStrings(t *testing.T) {
	assert.Equal(t, "record(a)", Record{Register: 'a'}.String())
	assert.Equal(t, "play(b)", Play{Register: 'b'}.String())
	assert.Equal(t, "play(@)", Play{}.String())
	assert.False(t, Stop{}.Repeatable())
}

func seqOf(evs []key.Event) string {
	seq := make(key.Sequence, 0, len(evs))
	for _, ev := range evs {
		seq = append(seq, ev.Stroke())
	}
	return seq.String()
}
