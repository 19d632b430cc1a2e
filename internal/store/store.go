// Package store handles SQLite persistence of query history.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/wordjumble/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// timeLayout keeps a fixed-width fraction so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps SQLite access for query history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS queries (
			id INTEGER PRIMARY KEY,
			asked_at TEXT NOT NULL,
			query TEXT NOT NULL,
			alphagram TEXT NOT NULL,
			dictionary_path TEXT NOT NULL,
			matches INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_queries_asked_at ON queries(asked_at);`,
		`CREATE INDEX IF NOT EXISTS idx_queries_alphagram ON queries(alphagram);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertQuery stores a completed search.
func (s *Store) InsertQuery(ctx context.Context, rec model.QueryRecord) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO queries (asked_at, query, alphagram, dictionary_path, matches, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.AskedAt.UTC().Format(timeLayout),
		rec.Query,
		rec.Alphagram,
		rec.DictionaryPath,
		rec.Matches,
		rec.DurationMs,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListQueries returns stored searches filtered by history config, oldest first.
func (s *Store) ListQueries(ctx context.Context, cfg model.HistoryConfig) ([]model.QueryRecord, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Since != nil {
		clauses = append(clauses, "asked_at >= ?")
		args = append(args, cfg.Since.UTC().Format(timeLayout))
	}
	if cfg.Contains != "" {
		clauses = append(clauses, "instr(lower(query), lower(?)) > 0")
		args = append(args, cfg.Contains)
	}
	query := fmt.Sprintf(`SELECT id, asked_at, query, alphagram, dictionary_path, matches, duration_ms
		FROM queries
		WHERE %s
		ORDER BY asked_at ASC, id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var records []model.QueryRecord
	for rows.Next() {
		var rec model.QueryRecord
		var askedAt string
		if err := rows.Scan(&rec.ID, &askedAt, &rec.Query, &rec.Alphagram, &rec.DictionaryPath, &rec.Matches, &rec.DurationMs); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, askedAt)
		if err != nil {
			return nil, err
		}
		rec.AskedAt = parsed
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// ClearQueries deletes all stored searches and returns how many were removed.
func (s *Store) ClearQueries(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM queries`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
