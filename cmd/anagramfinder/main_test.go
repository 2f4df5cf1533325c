package main

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/japaniel/anagramfinder/pkg/anagram"
	"github.com/japaniel/anagramfinder/pkg/db"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// runCLI runs the command and returns stdout, stderr and the exit code.
func runCLI(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	code := 0
	if err != nil {
		var exitErr *exitError
		require.True(t, errors.As(err, &exitErr), "unexpected error type: %v", err)
		code = exitErr.Code
		if exitErr.Message != "" {
			stderr.WriteString(exitErr.Message + "\n")
		}
	}
	return stdout.String(), stderr.String(), code
}

func TestRun_Report(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "words.txt", "abc\nbca\ncab\nxyz\n")

	stdout, stderr, code := runCLI(t, path)
	require.Equal(t, 0, code)
	require.Equal(t, "Max anagrams: 3\nabc\nbca\ncab\n", stdout)
	require.Empty(t, stderr)
}

func TestRun_NoAnagrams(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "words.txt", "word\n")

	stdout, _, code := runCLI(t, path)
	require.Equal(t, 0, code)
	require.Equal(t, "No anagrams found.\n", stdout)
}

func TestRun_Usage(t *testing.T) {
	t.Parallel()
	for _, args := range [][]string{nil, {"a.txt", "b.txt"}} {
		stdout, _, code := runCLI(t, args...)
		require.Equal(t, 1, code)
		require.Equal(t, usage+"\n", stdout)
	}
}

func TestRun_Help(t *testing.T) {
	t.Parallel()
	stdout, stderr, code := runCLI(t, "-h")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "Usage:")
	require.Contains(t, stderr, "-max-words")
}

func TestRun_UnknownFlag(t *testing.T) {
	t.Parallel()
	_, stderr, code := runCLI(t, "-bogus", "words.txt")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "bogus")
}

func TestRun_Version(t *testing.T) {
	t.Parallel()
	stdout, _, code := runCLI(t, "-version")
	require.Equal(t, 0, code)
	require.Equal(t, anagram.Version()+"\n", stdout)
}

func TestRun_FileNotFound(t *testing.T) {
	t.Parallel()
	missing := filepath.Join(t.TempDir(), "missing.txt")

	stdout, stderr, code := runCLI(t, missing)
	require.Equal(t, 1, code)
	require.Empty(t, stdout)
	require.Equal(t, "Error: File '"+missing+"' not found.\n", stderr)
}

func TestRun_CapacityExceeded(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "words.txt", "ab\nba\nab\n")

	stdout, stderr, code := runCLI(t, "-max-words", "2", path)
	require.Equal(t, 2, code)
	require.Empty(t, stdout, "no partial report on capacity errors")
	require.Contains(t, stderr, "too many words")

	_, stderr, code = runCLI(t, "-max-len", "2", writeFile(t, "long.txt", "abc\ncab\n"))
	require.Equal(t, 2, code)
	require.Contains(t, stderr, "word too long")
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "words.txt", "ab\nba\n")

	_, stderr, code := runCLI(t, "-format", "xml", path)
	require.Equal(t, 2, code)
	require.Contains(t, stderr, "unknown format")

	_, _, code = runCLI(t, "-config", filepath.Join(t.TempDir(), "missing.yaml"), path)
	require.Equal(t, 2, code)
}

func TestRun_ConfigFileAndFlagOverride(t *testing.T) {
	t.Parallel()
	words := writeFile(t, "words.txt", "ab\nba\n")
	cfg := writeConfig(t, "format: json\nmax_words: 1\n")

	// max_words: 1 from the file would fail; the flag raises it again.
	stdout, _, code := runCLI(t, "-config", cfg, "-max-words", "10", words)
	require.Equal(t, 0, code)
	require.JSONEq(t, `{"max":2,"groups":[["ab","ba"]]}`, stdout)

	_, _, code = runCLI(t, "-config", cfg, words)
	require.Equal(t, 2, code)
}

func TestRun_DebugLogging(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "words.txt", "ab\nba\nx1\n")

	stdout, stderr, code := runCLI(t, "-log-level", "debug", path)
	require.Equal(t, 0, code)
	require.Equal(t, "Max anagrams: 2\nab\nba\n", stdout, "logs must not reach stdout")
	require.Contains(t, stderr, "word list loaded")
	require.Contains(t, stderr, "invalid=1")
}

func TestRun_SQLiteInput(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "words.db")
	conn, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	require.NoError(t, db.ImportWords(conn, []string{"stop", "Pots", "tops", "spot1"}, "en"))
	require.NoError(t, conn.Close())

	stdout, _, code := runCLI(t, "-input", "sqlite", path)
	require.Equal(t, 0, code)
	require.Equal(t, "Max anagrams: 3\nPots\nstop\ntops\n", stdout)
}

func TestRun_HTMLInput(t *testing.T) {
	t.Parallel()
	article := filepath.Join("..", "..", "pkg", "extract", "testdata", "article.html")

	stdout, _, code := runCLI(t, "-input", "html", article)
	require.Equal(t, 0, code)
	require.True(t, strings.HasPrefix(stdout, "Max anagrams: 4\n"), "unexpected report:\n%s", stdout)
	require.Contains(t, stdout, "Stop\npots\nspot\ntops\n")
	require.Contains(t, stdout, "enlist\nlisten\nsilent\ntinsel\n")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	return writeFile(t, "anagramfinder.yaml", content)
}
