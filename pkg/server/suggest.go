package server

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance caps how different a candidate may be before it is not
// worth suggesting.
const maxSuggestDistance = 2

// SuggestVerb finds the known verb closest to the mistyped word, or "" when
// nothing is close enough. Ties go to the alphabetically first candidate.
func SuggestVerb(word string, known []string) string {
	if word == "" {
		return ""
	}
	sorted := make([]string, len(known))
	copy(sorted, known)
	sort.Strings(sorted)

	best := ""
	bestDist := maxSuggestDistance + 1
	for _, candidate := range sorted {
		if candidate == word {
			return candidate
		}
		d := levenshtein.ComputeDistance(word, candidate)
		if d < bestDist {
			best = candidate
			bestDist = d
		}
	}
	return best
}
