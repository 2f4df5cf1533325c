// Package extract turns an HTML article into plain tokens, one per line, so
// that prose can be fed to the anagram finder like any word list.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// ErrNoText is returned when no readable article text is found.
var ErrNoText = errors.New("no article text found")

// Analyzer splits extracted article text into word tokens.
type Analyzer struct {
	tok *tokenizer.Tokenizer
}

// NewAnalyzer loads the IPA dictionary. Latin words are not in it and come
// back as single unknown tokens, which is what the word list needs.
func NewAnalyzer() (*Analyzer, error) {
	tok, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("load tokenizer dictionary: %w", err)
	}
	return &Analyzer{tok: tok}, nil
}

// Tokens returns the surface text of each token in text. Whitespace tokens
// are dropped; punctuation is kept as its own token.
func (a *Analyzer) Tokens(text string) []string {
	var out []string
	for _, token := range a.tok.Tokenize(text) {
		if token.Class == tokenizer.DUMMY {
			continue
		}
		if strings.TrimSpace(token.Surface) == "" {
			continue
		}
		out = append(out, token.Surface)
	}
	return out
}

// Lines extracts the article in r and returns its distinct tokens joined by
// newlines. Repeats of a word in any letter case are dropped so prose does
// not report a word as its own anagram; the first spelling is kept.
func (a *Analyzer) Lines(r io.Reader, pageURL *url.URL) (string, error) {
	text, err := Text(r, pageURL)
	if err != nil {
		return "", err
	}
	seen := make(map[string]struct{})
	var lines []string
	for _, tok := range a.Tokens(text) {
		key := strings.ToLower(tok)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		lines = append(lines, tok)
	}
	return strings.Join(lines, "\n"), nil
}

// Text returns the readable article text of the HTML document in r.
// pageURL is used to resolve relative links and may point at a local file.
func Text(r io.Reader, pageURL *url.URL) (string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read html: %w", err)
	}
	article, err := readability.FromReader(bytes.NewReader(SanitizeRuby(content)), pageURL)
	if err != nil {
		return "", fmt.Errorf("extract article: %w", err)
	}
	if strings.TrimSpace(article.TextContent) == "" {
		return "", ErrNoText
	}
	return article.TextContent, nil
}

// Ruby markup spans lines in real pages and comes in either case.
var (
	rubyTextRe  = regexp.MustCompile(`(?si)<rt\b[^>]*>.*?</rt>`)
	rubyParenRe = regexp.MustCompile(`(?si)<rp\b[^>]*>.*?</rp>`)
)

// SanitizeRuby strips ruby readings (<rt>) and their fallback parentheses
// (<rp>) from an HTML document. Readability keeps their text inline, which
// glues the reading onto the base word ("kanjikan" for kanji<rt>kan</rt>)
// and turns a real word into one that matches nothing.
func SanitizeRuby(content []byte) []byte {
	return rubyParenRe.ReplaceAll(rubyTextRe.ReplaceAll(content, nil), nil)
}
