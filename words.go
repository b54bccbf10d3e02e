package runelookup

import (
	"cmp"
	"slices"
	"strings"
)

// nameWords splits a Unicode name on whitespace and orders the words by
// length, shortest first. The sort is stable: words of equal length keep
// their order from the name, which decides the base letter when several
// words share the minimum length.
func nameWords(name string) []string {
	words := strings.Fields(name)
	slices.SortStableFunc(words, func(a, b string) int {
		return cmp.Compare(len(a), len(b))
	})
	return words
}
