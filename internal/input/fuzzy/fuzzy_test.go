package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(s string) string { return s }

func texts[T any](ms []Match[T]) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Text
	}
	return out
}

func TestFilterRequiresOrderedRunes(t *testing.T) {
	got := Filter("dw", []string{"delete word", "word delete", "yank"}, identity)
	require.Len(t, got, 1)
	assert.Equal(t, "delete word", got[0].Text)
	assert.Equal(t, []int{0, 7}, got[0].Positions)
}

func TestFilterIgnoresCase(t *testing.T) {
	got := Filter("RECORD", []string{"record(a)", "play(a)"}, identity)
	assert.Equal(t, []string{"record(a)"}, texts(got))
}

func TestFilterRanking(t *testing.T) {
	items := []string{"xxdxxexxl", "delete", "model"}
	got := Filter("del", items, identity)
	require.Len(t, got, 3)
	assert.Equal(t, "delete", got[0].Text)
	assert.Equal(t, "xxdxxexxl", got[2].Text)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score)
	}
}

func TestFilterWordBoundaries(t *testing.T) {
	got := Filter("ms", []string{"mxxs", "move.start"}, identity)
	require.Len(t, got, 2)
	assert.Equal(t, "move.start", got[0].Text)
}

func TestFilterEmptyQuery(t *testing.T) {
	got := Filter("  ", []string{"b", "a"}, identity)
	assert.Equal(t, []string{"b", "a"}, texts(got))
	assert.Zero(t, got[0].Score)
}

func TestFilterKeepsValues(t *testing.T) {
	type entry struct {
		keys string
		desc string
	}
	entries := []entry{{"dd", "delete line"}, {"yy", "yank line"}}
	got := Filter("yank", entries, func(e entry) string { return e.desc })
	require.Len(t, got, 1)
	assert.Equal(t, "yy", got[0].Value.keys)
}

func TestScoreIsPositive(t *testing.T) {
	text := []rune("a" + string(make([]rune, 200)) + "b")
	assert.Equal(t, 1, score([]rune("ab"), text, []int{0, 201}))
}
