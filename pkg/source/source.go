// Package source opens the newline-delimited word stream the anagram finder
// reads, from a plain word list, a SQLite words table or an HTML article.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/japaniel/anagramfinder/pkg/db"
	"github.com/japaniel/anagramfinder/pkg/extract"
)

// Kind selects how the input path is read.
type Kind string

const (
	Lines  Kind = "lines"  // newline-delimited word list
	SQLite Kind = "sqlite" // words table of a SQLite database
	HTML   Kind = "html"   // article text of an HTML page
)

var (
	// ErrNotFound is returned when the input path cannot be opened.
	ErrNotFound = errors.New("not found")
	// ErrUnknownKind is returned for an unsupported Kind.
	ErrUnknownKind = errors.New("unknown input kind")
)

// ParseKind validates s as a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case Lines, SQLite, HTML:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Open returns the word stream for path. The caller closes it.
func Open(ctx context.Context, kind Kind, path string) (io.ReadCloser, error) {
	switch kind {
	case Lines:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		return f, nil
	case SQLite:
		return openSQLite(ctx, path)
	case HTML:
		return openHTML(path)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
}

func openSQLite(ctx context.Context, path string) (io.ReadCloser, error) {
	// sqlite creates missing files lazily and reports them late; check first.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	conn, err := db.OpenReadOnly(path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer conn.Close()

	words, err := db.LoadWords(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("load words from %s: %w", path, err)
	}
	// A row holding a line break could never be a valid word, but split
	// across lines its pieces might be.
	words = slices.DeleteFunc(words, func(w string) bool {
		return strings.ContainsAny(w, "\r\n")
	})
	return io.NopCloser(strings.NewReader(strings.Join(words, "\n"))), nil
}

func openHTML(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	defer f.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	analyzer, err := extract.NewAnalyzer()
	if err != nil {
		return nil, fmt.Errorf("create analyzer: %w", err)
	}
	text, err := analyzer.Lines(f, &url.URL{Scheme: "file", Path: filepath.ToSlash(abs)})
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", path, err)
	}
	return io.NopCloser(strings.NewReader(text)), nil
}
