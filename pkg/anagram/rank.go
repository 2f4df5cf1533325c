package anagram

import (
	"cmp"
	"slices"
	"strings"
)

// Rank returns the groups ordered by their leading word. Leading words are
// compared over their common prefix; on a tie the shorter group goes first.
// Groups that still tie keep their relative order. The input is not modified.
func Rank(groups []Group) []Group {
	out := slices.Clone(groups)
	slices.SortStableFunc(out, compareGroups)
	return out
}

func compareGroups(a, b Group) int {
	x, y := a.Words[0], b.Words[0]
	n := min(len(x), len(y))
	if c := strings.Compare(x[:n], y[:n]); c != 0 {
		return c
	}
	return cmp.Compare(a.Length, b.Length)
}
