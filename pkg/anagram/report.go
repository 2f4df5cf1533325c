package anagram

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// NoAnagrams is the whole report when no group was found.
const NoAnagrams = "No anagrams found."

// WriteText renders res as "Max anagrams: N" followed by each group's words,
// one per line, with a blank line between groups.
func WriteText(w io.Writer, res *Result) error {
	bw := bufio.NewWriter(w)
	if res == nil || len(res.Groups) == 0 {
		fmt.Fprintln(bw, NoAnagrams)
		return bw.Flush()
	}
	fmt.Fprintf(bw, "Max anagrams: %d\n", res.Max)
	for i, g := range res.Groups {
		if i > 0 {
			bw.WriteByte('\n')
		}
		for _, word := range g.Words {
			bw.WriteString(word)
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

type jsonReport struct {
	Max    int        `json:"max"`
	Groups [][]string `json:"groups"`
}

// WriteJSON renders res as a single JSON object:
// {"max":N,"groups":[["w1","w2"],...]}.
func WriteJSON(w io.Writer, res *Result) error {
	rep := jsonReport{Groups: [][]string{}}
	if res != nil {
		rep.Max = res.Max
		for _, g := range res.Groups {
			rep.Groups = append(rep.Groups, g.Words)
		}
	}
	return json.NewEncoder(w).Encode(rep)
}
