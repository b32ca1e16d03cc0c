// Package fuzzy ranks values by how well their text matches a query.
//
// A query matches when its runes appear in order in the text, ignoring
// case. Matches score higher when the runes are consecutive, start a word,
// or start the text:
//
//	found := fuzzy.Filter("dw", entries, func(e Entry) string { return e.Desc })
//	for _, m := range found {
//	    fmt.Println(m.Text, m.Score)
//	}
package fuzzy
