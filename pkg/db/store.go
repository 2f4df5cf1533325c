package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// InsertWord appends a word to the words table and returns its id.
// Rows keep insertion order, which is the order LoadWords returns them in.
// The CLI opens databases read-only; InsertWord and ImportWords exist to
// build word databases, such as test fixtures.
func InsertWord(db DBExecutor, word, language string) (int64, error) {
	if strings.TrimSpace(word) == "" {
		return 0, fmt.Errorf("word must be non-empty")
	}
	if language == "" {
		language = "en"
	}
	res, err := db.Exec(`INSERT INTO words (word, language) VALUES (?, ?)`, word, language)
	if err != nil {
		return 0, fmt.Errorf("insert word: %w", err)
	}
	return res.LastInsertId()
}

// ImportWords creates the schema if needed and appends words in one
// transaction. Nothing is written if any word is rejected.
func ImportWords(db *sql.DB, words []string, language string) error {
	if err := InitDB(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	for _, w := range words {
		if _, err := InsertWord(tx, w, language); err != nil {
			tx.Rollback()
			return fmt.Errorf("import %q: %w", w, err)
		}
	}
	return tx.Commit()
}

// LoadWords returns every word in the table ordered by id.
func LoadWords(ctx context.Context, db DBExecutor) ([]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT word FROM words ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
