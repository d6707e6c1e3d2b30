package soul

import (
	_ "embed"
	"sort"
	"strings"
)

//go:embed adverbs.txt
var adverbsRaw string

// Adverbs is the sorted list of recognized adverbs.
var Adverbs []string

var adverbSet map[string]bool

func init() {
	for _, line := range strings.Split(adverbsRaw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			Adverbs = append(Adverbs, line)
		}
	}
	sort.Strings(Adverbs)
	adverbSet = make(map[string]bool, len(Adverbs))
	for _, a := range Adverbs {
		adverbSet[a] = true
	}
}

// IsAdverb reports whether word is an exact adverb.
func IsAdverb(word string) bool {
	return adverbSet[word]
}

// SearchPrefix returns all adverbs starting with prefix, in sorted order.
func SearchPrefix(prefix string) []string {
	if prefix == "" {
		return nil
	}
	i := sort.SearchStrings(Adverbs, prefix)
	var out []string
	for ; i < len(Adverbs) && strings.HasPrefix(Adverbs[i], prefix); i++ {
		out = append(out, Adverbs[i])
	}
	return out
}
