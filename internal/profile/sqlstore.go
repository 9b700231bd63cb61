package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLStore implements Store on a SQL database, one row per key. The
// primary deployment backs it with a local SQLite file.
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore wraps an existing database handle.
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// OpenSQLite opens (or creates) the SQLite file at path and ensures the
// profile table exists.
func OpenSQLite(ctx context.Context, path string) (*SQLStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("profile: failed to open sqlite store: %w", err)
	}
	s := NewSQLStore(db)
	if err := s.Init(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Init creates the backing table when missing.
func (s *SQLStore) Init(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS profile_values (key TEXT PRIMARY KEY, value TEXT NOT NULL);`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("profile: Init failed to create table: %w", err)
	}
	return nil
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM profile_values WHERE key = ?;`
	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("profile: Get failed to scan row: %w", err)
	}
	return value, nil
}

func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO profile_values (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value;`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("profile: Set failed to upsert value: %w", err)
	}
	return nil
}

// Delete removes a stored value. Deleting an absent key is not an
// error; clearing a field must be idempotent.
func (s *SQLStore) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM profile_values WHERE key = ?;`
	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("profile: Delete failed to execute delete: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLStore) Close() error {
	return s.db.Close()
}
