package anagram

// Signature returns the letters of w folded to lower case and sorted in
// ascending order. Two words are anagrams iff their signatures are equal.
func Signature(w string) string {
	sig := make([]byte, len(w))
	sortLetters(sig, w)
	return string(sig)
}

// Signatures returns one signature per word of b, index-aligned with b.Words.
// All signatures of a bucket share one allocation.
func Signatures(b Bucket) []string {
	n := b.Length
	buf := make([]byte, len(b.Words)*n)
	for i, w := range b.Words {
		sortLetters(buf[i*n:(i+1)*n], w)
	}
	arena := string(buf)
	sigs := make([]string, len(b.Words))
	for i := range sigs {
		sigs[i] = arena[i*n : (i+1)*n]
	}
	return sigs
}

// sortLetters insertion-sorts the case-folded letters of w into dst.
// Words are short, so this beats the general-purpose sorts.
func sortLetters(dst []byte, w string) {
	for i := 0; i < len(w); i++ {
		c := fold(w[i])
		j := i
		for ; j > 0 && dst[j-1] > c; j-- {
			dst[j] = dst[j-1]
		}
		dst[j] = c
	}
}

func fold(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
