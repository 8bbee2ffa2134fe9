package token

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLiteStore keeps the token in a single-row key/value table, durable
// across app restarts.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore initializes the backing table if needed.
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS tokens (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("creating tokens table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Save(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tokens (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, storageKey, token)
	if err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM tokens WHERE key = ?
	`, storageKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}
	return value, nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM tokens WHERE key = ?`, storageKey)
	if err != nil {
		return fmt.Errorf("clearing token: %w", err)
	}
	return nil
}
