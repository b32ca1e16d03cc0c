package mode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/modalcore/internal/command"
	"github.com/dshills/modalcore/internal/input/key"
	"github.com/dshills/modalcore/internal/input/state"
)

func action(id string) state.Binding[command.Command] {
	return state.Leaf(key.Rune(rune(id[len(id)-1])), command.HostAction(id))
}

func baseProvider() *StaticProvider {
	return NewProvider("vim").
		Add(ModeNormal,
			state.Transition(key.Rune('g'),
				state.Leaf(key.Rune('u'), command.HostAction("vim.lower")),
				state.Leaf(key.Rune('g'), command.HostAction("vim.top")),
			),
			state.Leaf(key.Rune('x'), command.HostAction("vim.x")),
		).
		Add(ModeVisual, state.Leaf(key.Rune('d'), command.HostAction("vim.d")))
}

func resolveID(t *testing.T, r *Registry, mode, seq string) string {
	t.Helper()
	n, ok := r.Root(mode).Lookup(key.MustParseSequence(seq))
	require.True(t, ok, "%s not bound in %s", seq, mode)
	require.True(t, n.IsLeaf())
	id, ok := command.ActionID(n.Payload())
	require.True(t, ok)
	return id
}

func TestRegistryBaseOnly(t *testing.T) {
	r, err := NewRegistry(baseProvider())
	require.NoError(t, err)

	assert.Equal(t, []string{ModeNormal, ModeVisual}, r.Modes())
	assert.Equal(t, "vim.top", resolveID(t, r, ModeNormal, "gg"))
	assert.Equal(t, "vim.d", resolveID(t, r, ModeVisual, "d"))
	assert.Len(t, r.Bindings(ModeNormal), 3)

	m, ok := r.Mode(ModeVisual)
	require.True(t, ok)
	assert.Equal(t, "-- VISUAL --", m.DisplayName)
	assert.Equal(t, 0, r.Root("missing").Len())
}

func TestRegistryExtensionWins(t *testing.T) {
	ext := NewProvider("eclipse").Add(ModeNormal,
		state.Transition(key.Rune('g'),
			state.Leaf(key.Rune('u'), command.HostAction("eclipse.lower")),
			state.Leaf(key.Rune('U'), command.HostAction("eclipse.upper")),
		),
	)
	r, err := NewRegistry(baseProvider(), WithProviders(ext))
	require.NoError(t, err)

	assert.Equal(t, "eclipse.lower", resolveID(t, r, ModeNormal, "gu"))
	assert.Equal(t, "eclipse.upper", resolveID(t, r, ModeNormal, "gU"))
	assert.Equal(t, "vim.top", resolveID(t, r, ModeNormal, "gg"))
	assert.Equal(t, []string{"vim", "eclipse"}, r.Providers())
}

func TestRegistryLaterProviderWins(t *testing.T) {
	first := NewProvider("first").Add(ModeNormal, action("p.a"))
	second := NewProvider("second").Add(ModeNormal, action("q.a"))
	r, err := NewRegistry(baseProvider(), WithProviders(first, second))
	require.NoError(t, err)
	assert.Equal(t, "q.a", resolveID(t, r, ModeNormal, "a"))
}

func TestRegistryNewMode(t *testing.T) {
	ext := NewProvider("ext").Add("select", action("s.z"))
	r, err := NewRegistry(baseProvider(), WithProviders(ext))
	require.NoError(t, err)
	m, ok := r.Mode("select")
	require.True(t, ok)
	assert.Equal(t, CursorUnderline, m.CursorStyle)
	assert.Equal(t, "s.z", resolveID(t, r, "select", "z"))
}

func TestRegistryValidation(t *testing.T) {
	ext := NewProvider("eclipse").Add(ModeNormal,
		state.Transition(key.Rune('g'),
			state.Leaf(key.Rune('u'), command.HostAction("eclipse.lower")),
			state.Leaf(key.Rune('c'), command.HostAction("eclipse.comment")),
		),
		state.Transition(key.Rune('x'), state.Leaf(key.Rune('x'), command.HostAction("eclipse.xx"))),
	)
	_, err := NewRegistry(baseProvider(), WithProviders(ext), WithValidation())
	require.Error(t, err)

	var cerr *ConflictError
	require.True(t, errors.As(err, &cerr))
	require.Len(t, cerr.Conflicts, 2)
	assert.Equal(t, "eclipse/normal: gu", cerr.Conflicts[0].String())
	assert.Equal(t, "eclipse/normal: x (shadows)", cerr.Conflicts[1].String())
	assert.Contains(t, err.Error(), "2 conflicting binding(s)")

	clean := NewProvider("clean").Add(ModeNormal, action("c.q"))
	_, err = NewRegistry(baseProvider(), WithProviders(clean), WithValidation())
	assert.NoError(t, err)
}

func TestRegistryRequiresBase(t *testing.T) {
	_, err := NewRegistry(nil)
	assert.ErrorIs(t, err, ErrNoBaseProvider)
}

func TestCursorStyleString(t *testing.T) {
	tests := []struct {
		style CursorStyle
		want  string
	}{
		{CursorBlock, "block"},
		{CursorBar, "bar"},
		{CursorUnderline, "underline"},
		{CursorStyle(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.style.String(); got != tt.want {
			t.Errorf("CursorStyle(%d).String() = %q, want %q", tt.style, got, tt.want)
		}
	}
}

func TestProviderDeclare(t *testing.T) {
	ext := NewProvider("ext").
		Declare(ModeNormal, key.MustParseSequence("gc"), command.HostAction("ext.comment")).
		Declare(ModeNormal, key.MustParseSequence("<C-f>"), command.HostAction("ext.pageDown"))

	r, err := NewRegistry(baseProvider(), WithProviders(ext))
	require.NoError(t, err)
	assert.Equal(t, "ext.comment", resolveID(t, r, ModeNormal, "gc"))
	assert.Equal(t, "vim.lower", resolveID(t, r, ModeNormal, "gu"))
	assert.Equal(t, "ext.pageDown", resolveID(t, r, ModeNormal, "<C-f>"))
	assert.Equal(t, []string{"vim", "ext"}, r.Providers())
}
