// Package history records hashtag lookups in SQLite.
package history

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/pario-ai/tagtally/pkg/models"
)

// Store keeps query records in a SQLite database.
type Store struct {
	db *sql.DB
}

const createTable = `
CREATE TABLE IF NOT EXISTS queries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashtag TEXT NOT NULL,
	cache_key TEXT NOT NULL,
	hit INTEGER NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_queries_hashtag ON queries(hashtag);
`

// New opens the history database and runs auto-migration.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate history db: %w", err)
	}

	return &Store{db: db}, nil
}

// Record stores a query record.
func (s *Store) Record(ctx context.Context, rec models.QueryRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO queries (hashtag, cache_key, hit, created_at) VALUES (?, ?, ?, ?)`,
		rec.Hashtag, rec.CacheKey, rec.Hit, rec.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("record query: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]models.QueryRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, hashtag, cache_key, hit, created_at FROM queries ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent queries: %w", err)
	}
	defer rows.Close()

	var records []models.QueryRecord
	for rows.Next() {
		var r models.QueryRecord
		if err := rows.Scan(&r.ID, &r.Hashtag, &r.CacheKey, &r.Hit, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan query: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Summary returns lookup counts grouped by hashtag, most looked up first.
func (s *Store) Summary(ctx context.Context) ([]models.QuerySummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT hashtag, COUNT(*), COALESCE(SUM(hit), 0), COALESCE(SUM(1 - hit), 0)
		 FROM queries GROUP BY hashtag ORDER BY COUNT(*) DESC, hashtag`,
	)
	if err != nil {
		return nil, fmt.Errorf("query summary: %w", err)
	}
	defer rows.Close()

	var summaries []models.QuerySummary
	for rows.Next() {
		var q models.QuerySummary
		if err := rows.Scan(&q.Hashtag, &q.Lookups, &q.Hits, &q.Misses); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		summaries = append(summaries, q)
	}
	return summaries, rows.Err()
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
