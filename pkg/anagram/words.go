package anagram

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"slices"
)

const (
	// DefaultMaxWords is the default cap on stored words.
	DefaultMaxWords = 100000
	// DefaultMaxWordLen is the default cap on the length of a stored word.
	DefaultMaxWordLen = 30

	minWordLen = 2
)

// Limits bounds the word list accepted by Load. Zero fields use the defaults.
type Limits struct {
	MaxWords   int
	MaxWordLen int
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{MaxWords: DefaultMaxWords, MaxWordLen: DefaultMaxWordLen}
}

func (l Limits) withDefaults() Limits {
	if l.MaxWords <= 0 {
		l.MaxWords = DefaultMaxWords
	}
	if l.MaxWordLen <= 0 {
		l.MaxWordLen = DefaultMaxWordLen
	}
	return l
}

// Bucket holds every stored word of one length, in input order.
// Words share a single backing arena owned by the Store.
type Bucket struct {
	Length int
	Words  []string
}

// Stats counts what happened to the input lines during Load.
type Stats struct {
	Lines   int // lines read, including discarded ones
	Invalid int // lines with a non-letter character
	Short   int // valid lines shorter than two letters
	Words   int // words stored
	Buckets int // distinct word lengths
}

// Store is the validated, length-bucketed word collection.
// It is immutable once Load returns.
type Store struct {
	buckets []Bucket
	stats   Stats
}

// Load reads newline-delimited words from r.
//
// A line is kept only if every byte is an ASCII letter and it has at least
// two letters; other lines are discarded whole. A single '\r' before the line
// break is dropped. The last line is read even without a trailing newline.
// A line is never buffered past MaxWordLen bytes.
// Load fails with a *CapacityError if the limits are exceeded.
func Load(r io.Reader, limits Limits) (*Store, error) {
	limits = limits.withDefaults()

	// Words of one length are appended back to back, so word i of a bucket
	// of length n sits at arena[i*n:(i+1)*n].
	arenas := make(map[int][]byte)
	var stats Stats

	br := bufio.NewReader(r)
	ln := wordLine{maxLen: limits.MaxWordLen}
	for {
		chunk, err := br.ReadSlice('\n')
		if err != nil && err != bufio.ErrBufferFull && err != io.EOF {
			return nil, fmt.Errorf("read word list: %w", err)
		}
		if len(chunk) > 0 {
			ln.feed(bytes.TrimSuffix(chunk, []byte{'\n'}))
		}
		if err == bufio.ErrBufferFull || !ln.started {
			if err == io.EOF {
				break
			}
			continue
		}

		stats.Lines++
		switch {
		case ln.invalid:
			stats.Invalid++
		case ln.n < minWordLen:
			stats.Short++
		case ln.tooLong:
			return nil, &CapacityError{Limit: limits.MaxWordLen, Line: stats.Lines, Err: ErrWordTooLong}
		case stats.Words >= limits.MaxWords:
			return nil, &CapacityError{Limit: limits.MaxWords, Line: stats.Lines, Err: ErrTooManyWords}
		default:
			arenas[ln.n] = append(arenas[ln.n], ln.buf...)
			stats.Words++
		}
		ln.reset()
		if err == io.EOF {
			break
		}
	}

	s := &Store{stats: stats}
	lengths := make([]int, 0, len(arenas))
	for n := range arenas {
		lengths = append(lengths, n)
	}
	slices.Sort(lengths)
	for _, n := range lengths {
		arena := string(arenas[n])
		words := make([]string, len(arena)/n)
		for i := range words {
			words[i] = arena[i*n : (i+1)*n]
		}
		s.buckets = append(s.buckets, Bucket{Length: n, Words: words})
	}
	s.stats.Buckets = len(s.buckets)
	return s, nil
}

// Buckets returns the buckets in ascending length order. Callers must not
// modify the returned slices.
func (s *Store) Buckets() []Bucket { return s.buckets }

// Stats returns the ingestion counters.
func (s *Store) Stats() Stats { return s.stats }

// Len returns the number of stored words.
func (s *Store) Len() int { return s.stats.Words }

// wordLine classifies one input line as it arrives in pieces. Only a line
// that can still become a stored word is buffered, so memory per line is
// bounded by maxLen however long the line is.
type wordLine struct {
	maxLen  int
	buf     []byte
	n       int  // letters seen
	started bool // any byte of the line was read
	cr      bool // the last piece ended in '\r'
	invalid bool // a non-letter was seen
	tooLong bool // more than maxLen letters
}

// feed adds the next piece of the line, without its '\n'. A '\r' ending a
// piece is held back: it is dropped if the line ends right after it and is
// a non-letter otherwise.
func (l *wordLine) feed(p []byte) {
	l.started = true
	if len(p) == 0 {
		return
	}
	if l.cr {
		l.invalid = true
	}
	l.cr = false
	if n := len(p); n > 0 && p[n-1] == '\r' {
		l.cr = true
		p = p[:n-1]
	}
	if l.invalid {
		return
	}
	if !isLetters(p) {
		l.invalid = true
		l.buf = l.buf[:0]
		return
	}
	l.n += len(p)
	if l.n > l.maxLen {
		l.tooLong = true
		l.buf = l.buf[:0]
		return
	}
	l.buf = append(l.buf, p...)
}

func (l *wordLine) reset() {
	*l = wordLine{maxLen: l.maxLen, buf: l.buf[:0]}
}

func isLetters(b []byte) bool {
	for _, c := range b {
		if !isLetter(c) {
			return false
		}
	}
	return true
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
