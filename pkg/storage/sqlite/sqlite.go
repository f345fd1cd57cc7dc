package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/cinescope/cinescope/pkg/storage"
	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

// New creates a new sqlite response cache given a path to the database file
// and applies any pending migrations.
func New(filePath string) (storage.Storage, error) {
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{
		db: db,
	}, nil
}

// Get returns the stored response body for the key, or storage.ErrNotFound.
func (s *SQLite) Get(ctx context.Context, key string) ([]byte, error) {
	var body []byte
	query := `SELECT body FROM api_cache WHERE key = ?`
	err := s.db.QueryRowContext(ctx, query, key).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return body, nil
}

// Put stores the response body under the key, replacing any previous value.
func (s *SQLite) Put(ctx context.Context, key string, body []byte) error {
	query := `INSERT INTO api_cache (key, body, fetched_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET body = excluded.body, fetched_at = excluded.fetched_at`
	_, err := s.db.ExecContext(ctx, query, key, body, time.Now().UTC())
	return err
}

// Close closes the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}
