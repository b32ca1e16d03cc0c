package platform

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/modalcore/internal/engine"
	"github.com/dshills/modalcore/internal/engine/buffer"
	"github.com/dshills/modalcore/internal/input"
	"github.com/dshills/modalcore/internal/input/key"
	"github.com/dshills/modalcore/internal/input/mode"
)

func loadTestdata(t *testing.T, name string) *Declaration {
	t.Helper()
	d, err := NewLoader().LoadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return d
}

type recorder struct {
	calls  map[string]int
	ranges map[string][2]int
}

func newRecordingDoc(t *testing.T, content string, ids ...string) (*engine.Document, *recorder) {
	t.Helper()
	rec := &recorder{calls: map[string]int{}, ranges: map[string][2]int{}}
	d := engine.New(engine.WithContent(content))
	for _, id := range ids {
		id := id
		require.NoError(t, d.RegisterAction(id, func(d *engine.Document) error {
			rec.calls[id]++
			if sel := d.Selection(); sel != nil {
				r := sel.Range()
				rec.ranges[id] = [2]int{r.LeftBound().ModelOffset(), r.RightBound().ModelOffset()}
			}
			return nil
		}))
	}
	return d, rec
}

func newSession(t *testing.T, d *engine.Document, decls ...*Declaration) *input.Session {
	t.Helper()
	reg, err := BuildRegistry(decls, false)
	require.NoError(t, err)
	s, err := input.NewSession(d, reg)
	require.NoError(t, err)
	return s
}

func feed(t *testing.T, s *input.Session, seq string) {
	t.Helper()
	_, err := s.FeedSequence(key.MustParseSequence(seq))
	require.NoError(t, err)
}

func TestLoadTOML(t *testing.T) {
	d := loadTestdata(t, "eclipse.toml")
	assert.Equal(t, "eclipse", d.Name)
	assert.Equal(t, filepath.Join("testdata", "eclipse.toml"), d.Source)
	require.Len(t, d.Bindings, 7)

	zo := d.Bindings[1]
	require.NotNil(t, zo.Repeat)
	assert.False(t, *zo.Repeat)
	assert.Nil(t, zo.Count)

	gc := d.Bindings[4]
	assert.True(t, gc.Operator)
	assert.True(t, gc.Deselect)
	assert.True(t, d.Bindings[6].LeaveVisual)
}

func TestLoadYAML(t *testing.T) {
	d := loadTestdata(t, "refactor.yaml")
	assert.Equal(t, "refactor", d.Name)
	require.Len(t, d.Bindings, 2)
	require.NotNil(t, d.Bindings[0].Count)
	assert.False(t, *d.Bindings[0].Count)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := NewLoader().LoadFile(filepath.Join("testdata", "broken.toml"))
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, filepath.Join("testdata", "broken.toml"), pe.Path)

	_, err = LoadReader(strings.NewReader("name: x\nbogus: 1\n"), FormatYAML, "inline.yaml")
	assert.ErrorAs(t, err, &pe)
}

func TestLoadTOMLSyntaxErrorPosition(t *testing.T) {
	_, err := LoadReader(strings.NewReader("name = \"x\"\n[[bindings]\n"), FormatTOML, "bad.toml")
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
	assert.Contains(t, pe.Error(), "bad.toml at line 2")
}

func TestFormatOf(t *testing.T) {
	f, err := FormatOf("a/b.YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)
	assert.Equal(t, "yaml", f.String())

	f, err = FormatOf("x.toml")
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, f)

	_, err = FormatOf("x.json")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestValidate(t *testing.T) {
	no := false
	tests := []struct {
		name string
		decl Declaration
		want error
	}{
		{"no name", Declaration{}, ErrNoName},
		{"no mode", Declaration{Name: "x", Bindings: []Binding{{Keys: "q", Action: "a"}}}, ErrInvalidBinding},
		{"no action", Declaration{Name: "x", Bindings: []Binding{{Mode: "normal", Keys: "q"}}}, ErrInvalidBinding},
		{"bad keys", Declaration{Name: "x", Bindings: []Binding{{Mode: "normal", Keys: "<Bogus>", Action: "a"}}}, ErrInvalidBinding},
		{"visual operator", Declaration{Name: "x", Bindings: []Binding{{Mode: "visual", Keys: "q", Action: "a", Operator: true}}}, ErrInvalidBinding},
		{"long operator", Declaration{Name: "x", Bindings: []Binding{{Mode: "normal", Keys: "abc", Action: "a", Operator: true}}}, ErrInvalidBinding},
		{"leave visual in normal", Declaration{Name: "x", Bindings: []Binding{{Mode: "normal", Keys: "q", Action: "a", LeaveVisual: true}}}, ErrInvalidBinding},
		{"valid", Declaration{Name: "x", Bindings: []Binding{{Mode: "normal", Keys: "q", Action: "a", Repeat: &no}}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.decl.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadAllSkipsBrokenFiles(t *testing.T) {
	l := NewLoader("testdata")
	files, err := l.Files()
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "broken.toml", filepath.Base(files[0]))

	decls, err := l.LoadAll()
	assert.Error(t, err)
	require.Len(t, decls, 2)
	assert.Equal(t, "eclipse", decls[0].Name)
	assert.Equal(t, "refactor", decls[1].Name)

	_, err = l.Reload(false)
	assert.Error(t, err)

	_, err = NewLoader("testdata/missing").Files()
	assert.Error(t, err)
}

func TestReloadExplicitFiles(t *testing.T) {
	l := NewLoader(filepath.Join("testdata", "eclipse.toml"))
	l.AddSearchPath(filepath.Join("testdata", "refactor.yaml"))
	assert.Len(t, l.SearchPaths(), 2)

	reg, err := l.Reload(false)
	require.NoError(t, err)
	assert.Equal(t, []string{"vim", "eclipse", "refactor"}, reg.Providers())
}

func TestNormalModeOperatorDeselects(t *testing.T) {
	d, rec := newRecordingDoc(t, "foo bar baz", "toggle.comment", "indent")
	d.SetPosition(buffer.NewPosition(5), false)
	s := newSession(t, d, loadTestdata(t, "eclipse.toml"))

	feed(t, s, "gciw")
	assert.Equal(t, 1, rec.calls["toggle.comment"])
	assert.Equal(t, [2]int{4, 7}, rec.ranges["toggle.comment"])
	assert.Nil(t, d.Selection())
	assert.Equal(t, mode.ModeNormal, s.Mode())

	feed(t, s, ".")
	assert.Equal(t, 2, rec.calls["toggle.comment"])

	d.SetPosition(buffer.NewPosition(0), false)
	feed(t, s, "=w")
	assert.Equal(t, [2]int{0, 4}, rec.ranges["indent"])
}

func TestOperatorDoubledKeyActsOnLine(t *testing.T) {
	d, rec := newRecordingDoc(t, "foo\nbar\nbaz", "toggle.comment", "indent")
	s := newSession(t, d, loadTestdata(t, "eclipse.toml"))

	d.SetPosition(buffer.NewPosition(5), false)
	feed(t, s, "==")
	assert.Equal(t, 1, rec.calls["indent"])
	assert.Equal(t, [2]int{4, 7}, rec.ranges["indent"])
	assert.Equal(t, "foo\nbar\nbaz", d.Text())

	d.SetPosition(buffer.NewPosition(5), false)
	feed(t, s, "gcc")
	assert.Equal(t, [2]int{4, 7}, rec.ranges["toggle.comment"])

	d.SetPosition(buffer.NewPosition(0), false)
	feed(t, s, "2==")
	assert.Equal(t, [2]int{0, 7}, rec.ranges["indent"])
}

func TestVisualLeaveVisual(t *testing.T) {
	d, rec := newRecordingDoc(t, "foo bar", "toggle.comment")
	s := newSession(t, d, loadTestdata(t, "eclipse.toml"))

	feed(t, s, "vegc")
	assert.Equal(t, 1, rec.calls["toggle.comment"])
	assert.Equal(t, [2]int{0, 3}, rec.ranges["toggle.comment"])
	assert.Equal(t, mode.ModeNormal, s.Mode())

	start, ok := d.MarkTable().Mark(buffer.LastSelectionStart)
	require.True(t, ok)
	assert.Equal(t, 0, start.ModelOffset())

	cmd, _ := s.LastCommand()
	assert.Nil(t, cmd)
}

func TestBindingFlags(t *testing.T) {
	d, rec := newRecordingDoc(t, "abc", "join.lines", "folding.expand", "refactor.quickMenu", "rename.element")
	s := newSession(t, d, loadTestdata(t, "eclipse.toml"), loadTestdata(t, "refactor.yaml"))

	feed(t, s, "3J")
	assert.Equal(t, 3, rec.calls["join.lines"])

	feed(t, s, "3gr")
	assert.Equal(t, 1, rec.calls["refactor.quickMenu"])

	feed(t, s, "zo")
	feed(t, s, ".")
	assert.Equal(t, 1, rec.calls["folding.expand"])
	assert.Equal(t, 2, rec.calls["refactor.quickMenu"])

	feed(t, s, "gR")
	assert.Equal(t, 1, rec.calls["rename.element"])
}

func TestCtrlBindingDeselects(t *testing.T) {
	d, rec := newRecordingDoc(t, "abc", "open.editor", "goto.pageDown")
	s := newSession(t, d, loadTestdata(t, "eclipse.toml"))

	feed(t, s, "<C-f><C-]>")
	assert.Equal(t, 1, rec.calls["goto.pageDown"])
	assert.Equal(t, 1, rec.calls["open.editor"])
}

func TestBuildRegistryValidation(t *testing.T) {
	eclipse := loadTestdata(t, "eclipse.toml")

	_, err := BuildRegistry([]*Declaration{eclipse}, true)
	var ce *mode.ConflictError
	require.True(t, errors.As(err, &ce))
	assert.Contains(t, err.Error(), "eclipse/normal: =")

	reg, err := BuildRegistry([]*Declaration{eclipse}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"vim", "eclipse"}, reg.Providers())
}

func TestProvidersRejectInvalid(t *testing.T) {
	_, err := Providers([]*Declaration{{Name: "x", Bindings: []Binding{{Mode: "normal"}}}})
	assert.ErrorIs(t, err, ErrInvalidBinding)
}
