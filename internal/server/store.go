package server

import (
	"context"
	"errors"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already registered")
)

// User is the stored account record. PasswordHash is a bcrypt hash;
// the plain password never touches the store.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Age          int
	PasswordHash string
}

type Store interface {
	CreateUser(ctx context.Context, u User) error
	UserByEmail(ctx context.Context, email string) (User, error)
	CreateToken(ctx context.Context, userID string) (token string, err error)
	Ping(ctx context.Context) error
}
