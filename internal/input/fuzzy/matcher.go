package fuzzy

import (
	"sort"
	"strings"
	"unicode"
)

// Match is a value whose text matched the query.
type Match[T any] struct {
	Value T
	Text  string

	// Score is higher for better matches.
	Score int

	// Positions holds the rune indices of the matched runes in Text.
	Positions []int
}

// Filter returns the values whose text matches query, best first. Ties keep
// the input order. An empty query matches every value with a zero score.
func Filter[T any](query string, values []T, text func(T) string) []Match[T] {
	query = strings.ToLower(strings.TrimSpace(query))
	q := []rune(query)

	out := make([]Match[T], 0, len(values))
	for _, v := range values {
		t := text(v)
		if len(q) == 0 {
			out = append(out, Match[T]{Value: v, Text: t})
			continue
		}
		pos := positions(q, t)
		if pos == nil {
			continue
		}
		out = append(out, Match[T]{
			Value:     v,
			Text:      t,
			Score:     score(q, []rune(t), pos),
			Positions: pos,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// positions finds q in text with a greedy left-to-right scan. It returns
// nil unless every rune of q is found.
func positions(q []rune, text string) []int {
	pos := make([]int, 0, len(q))
	for i, r := range []rune(text) {
		if len(pos) == len(q) {
			break
		}
		if unicode.ToLower(r) == q[len(pos)] {
			pos = append(pos, i)
		}
	}
	if len(pos) != len(q) {
		return nil
	}
	return pos
}
