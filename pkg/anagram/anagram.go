// Package anagram finds the largest groups of mutual anagrams in a word list.
//
// The pipeline is Load (validate and bucket words by length), Grouper
// (partition each bucket by signature, keep the largest groups), Rank
// (order the groups) and WriteText or WriteJSON (render the report).
// Letters are matched case-insensitively over ASCII only.
package anagram

import "io"

// Version returns the current version of the package.
func Version() string { return "0.2.0" }

// Result holds every group of the largest size, in ranked order.
type Result struct {
	Max    int
	Groups []Group
}

// Find runs the whole pipeline over the word list in r. Once the list is
// loaded nothing downstream can fail.
func Find(r io.Reader, limits Limits) (*Result, Stats, error) {
	store, err := Load(r, limits)
	if err != nil {
		return nil, Stats{}, err
	}
	var g Grouper
	for _, b := range store.Buckets() {
		g.Add(b)
	}
	return &Result{Max: g.Max(), Groups: Rank(g.Groups())}, store.Stats(), nil
}
