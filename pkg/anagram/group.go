package anagram

import "slices"

// Group is a set of two or more words of one length sharing one signature.
// Words are in ascending byte order of their original text.
type Group struct {
	Length int
	Words  []string
}

// Grouper partitions buckets into anagram groups and keeps only the groups
// of the largest size seen so far.
type Grouper struct {
	max    int
	groups []Group
}

// Add groups the words of b. Each word joins at most one group: the one
// anchored at the earliest word of b with the same signature.
func (g *Grouper) Add(b Bucket) {
	sigs := Signatures(b)
	claimed := make([]bool, len(b.Words))
	for i, sig := range sigs {
		if claimed[i] {
			continue
		}
		var members []string
		for j := i + 1; j < len(sigs); j++ {
			if claimed[j] || sigs[j] != sig {
				continue
			}
			if members == nil {
				members = []string{b.Words[i]}
			}
			members = insertSorted(members, b.Words[j])
			claimed[j] = true
		}
		if members != nil {
			g.offer(Group{Length: b.Length, Words: members})
		}
	}
}

func (g *Grouper) offer(grp Group) {
	switch n := len(grp.Words); {
	case n > g.max:
		g.max = n
		g.groups = []Group{grp}
	case n == g.max:
		g.groups = append(g.groups, grp)
	}
}

// Max returns the size of the largest group found, or 0 if there is none.
func (g *Grouper) Max() int { return g.max }

// Groups returns every group of size Max, in discovery order.
func (g *Grouper) Groups() []Group { return slices.Clone(g.groups) }

func insertSorted(words []string, w string) []string {
	i, _ := slices.BinarySearch(words, w)
	return slices.Insert(words, i, w)
}
