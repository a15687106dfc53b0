// Package similarity ranks candidate anchor ids against a mistyped fragment
// so the link validator can suggest fixes.
package similarity

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

// Distance returns the classic single-character-edit Levenshtein distance
// between a and b, computed over Unicode code points.
func Distance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// FindSimilar returns the candidates within maxDistance edits of query,
// sorted by ascending distance. Exact matches are excluded; ties keep the
// candidate order.
func FindSimilar(query string, candidates []string, maxDistance int) []string {
	type scored struct {
		value    string
		distance int
	}

	var matches []scored
	for _, candidate := range candidates {
		if candidate == query {
			continue
		}
		if d := Distance(query, candidate); d <= maxDistance {
			matches = append(matches, scored{value: candidate, distance: d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.value
	}
	return out
}
