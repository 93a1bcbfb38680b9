package search

import (
	"slices"

	"github.com/cristianoliveira/barangay-directory/internal/roster"
)

type scored struct {
	index int
	score int
}

// Rank returns the entries of r that score above zero, ordered by score
// descending. Equal scores keep their order from r.
//
// Empty keywords return r itself. When nothing scores the result is empty,
// not r. A nil p scores with the substring provider.
func Rank(r roster.Roster, kw Keywords, p Provider) roster.Roster {
	if kw.IsEmpty() {
		return r
	}
	if p == nil {
		p = NewSubstringProvider()
	}

	entries := r.Entries()
	hits := make([]scored, 0, len(entries))
	for i, e := range entries {
		if s := p.Score(e.DisplayName, kw); s > 0 {
			hits = append(hits, scored{index: i, score: s})
		}
	}

	slices.SortStableFunc(hits, func(a, b scored) int {
		return b.score - a.score
	})

	out := make([]roster.Entry, len(hits))
	for i, h := range hits {
		out[i] = entries[h.index]
	}
	return roster.FromEntries(out)
}
