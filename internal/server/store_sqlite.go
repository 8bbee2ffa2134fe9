package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates the users and auth_tokens tables if needed.
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	for _, ddl := range []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			first_name    TEXT NOT NULL,
			last_name     TEXT NOT NULL,
			email         TEXT UNIQUE NOT NULL,
			age           INTEGER NOT NULL,
			password_hash TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS auth_tokens (
			token   TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id)
		)`,
	} {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return nil, fmt.Errorf("creating table: %w", err)
		}
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) CreateUser(ctx context.Context, u User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, first_name, last_name, email, age, password_hash)
		VALUES (?, ?, ?, ?, ?, ?)
	`, u.ID, u.FirstName, u.LastName, u.Email, u.Age, u.PasswordHash)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrEmailTaken
	}
	return err
}

func (s *SQLiteStore) UserByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email, age, password_hash
		FROM users
		WHERE email = ?
	`, email).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Age, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	return u, err
}

func (s *SQLiteStore) CreateToken(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO auth_tokens (token, user_id) VALUES (?, ?)
	`, token, userID)
	if err != nil {
		return "", fmt.Errorf("storing token: %w", err)
	}
	return token, nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
