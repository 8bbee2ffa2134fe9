// Package token persists the learner's session token between app runs.
package token

import (
	"context"
	"errors"
	"sync"
)

// storageKey is the fixed identifier the token is stored under. There is
// exactly one token per installation.
const storageKey = "session_token"

// ErrNoToken is returned by Get when no token has been saved.
var ErrNoToken = errors.New("token: no stored token")

// Store is the token-storage collaborator handed to the auth client and
// the app shell. Implementations must be durable enough for their
// context: SQLiteStore across restarts, MemStore for tests.
type Store interface {
	Save(ctx context.Context, token string) error
	Get(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// MemStore keeps the token in memory. Used in tests and as a fallback
// when no database path is configured.
type MemStore struct {
	mu    sync.Mutex
	token string
	set   bool
}

func NewMemStore() *MemStore { return &MemStore{} }

func (m *MemStore) Save(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.set = true
	return nil
}

func (m *MemStore) Get(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return "", ErrNoToken
	}
	return m.token, nil
}

func (m *MemStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.set = false
	return nil
}
