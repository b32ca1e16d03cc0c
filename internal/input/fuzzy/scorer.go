package fuzzy

import "unicode"

// Score weights.
const (
	baseScore        = 100
	consecutiveBonus = 20
	boundaryBonus    = 15
	firstRuneBonus   = 25
	prefixBonus      = 50
	gapPenalty       = 2
	shortTextLen     = 20
)

// score rates a match of q in text at pos. Every match scores at least 1.
func score(q, text []rune, pos []int) int {
	s := baseScore
	for i, p := range pos {
		if i > 0 && p == pos[i-1]+1 {
			s += consecutiveBonus
		}
		if isWordStart(text, p) {
			s += boundaryBonus
		}
	}

	first, last := pos[0], pos[len(pos)-1]
	if first == 0 {
		s += firstRuneBonus
	}
	if gap := last - first - len(pos) + 1; gap > 0 {
		s -= gap * gapPenalty
	}
	s -= first

	if len(text) < shortTextLen {
		s += shortTextLen - len(text)
	}
	if last == len(q)-1 {
		s += prefixBonus
	}
	return max(s, 1)
}

// isWordStart reports whether text[i] follows a separator or is the upper
// case rune of a camelCase transition.
func isWordStart(text []rune, i int) bool {
	if i == 0 {
		return true
	}
	prev, cur := text[i-1], text[i]
	if unicode.IsSpace(prev) || unicode.IsPunct(prev) {
		return true
	}
	return unicode.IsLower(prev) && unicode.IsUpper(cur)
}
