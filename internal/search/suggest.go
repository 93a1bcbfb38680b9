package search

import (
	"slices"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"github.com/cristianoliveira/barangay-directory/internal/roster"
)

// Suggest proposes up to limit name words close to kw by edit distance.
// It is meant for searches that matched nothing, to surface likely typos.
func Suggest(r roster.Roster, kw Keywords, limit int) []string {
	if kw.IsEmpty() || limit <= 0 {
		return nil
	}

	type candidate struct {
		word string
		dist int
	}
	best := make(map[string]int)
	for _, name := range r.Names() {
		for _, word := range nameWords(name) {
			for _, token := range kw {
				d := levenshtein.ComputeDistance(word, token)
				if d == 0 || d > maxDistance(token) {
					continue
				}
				if prev, ok := best[word]; !ok || d < prev {
					best[word] = d
				}
			}
		}
	}

	candidates := make([]candidate, 0, len(best))
	for w, d := range best {
		candidates = append(candidates, candidate{word: w, dist: d})
	}
	slices.SortFunc(candidates, func(a, b candidate) int {
		if a.dist != b.dist {
			return a.dist - b.dist
		}
		return strings.Compare(a.word, b.word)
	})

	out := make([]string, 0, min(limit, len(candidates)))
	for _, c := range candidates {
		if len(out) == limit {
			break
		}
		out = append(out, c.word)
	}
	return out
}

// maxDistance allows roughly one edit per three characters, at least one.
func maxDistance(token string) int {
	return max(1, len([]rune(token))/3)
}

func nameWords(name string) []string {
	return strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '-' && r != '\''
	})
}
