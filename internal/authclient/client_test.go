package authclient

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/codequizzer/quizapp/internal/token"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *token.MemStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	tokens := token.NewMemStore()
	return New(srv.URL, tokens, testLogger()), tokens
}

func TestLoginSuccessSavesToken(t *testing.T) {
	ctx := context.Background()
	client, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login" {
			t.Errorf("expected POST /login, got %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"tok-123"}`))
	})

	if err := client.Login(ctx, "a@b.com", "secret123"); err != nil {
		t.Fatalf("login: %v", err)
	}

	got, err := tokens.Get(ctx)
	if err != nil {
		t.Fatalf("token not stored: %v", err)
	}
	if got != "tok-123" {
		t.Errorf("expected tok-123, got %q", got)
	}
}

func TestLoginUnauthorizedWithMessage(t *testing.T) {
	ctx := context.Background()
	client, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"bad creds"}`))
	})

	err := client.Login(ctx, "a@b.com", "secret")
	if KindOf(err) != KindInvalidCredentials {
		t.Fatalf("expected invalid-credentials kind, got %v", err)
	}
	if err.Error() != "bad creds" {
		t.Errorf("expected server-provided message, got %q", err.Error())
	}
	if _, err := tokens.Get(ctx); !errors.Is(err, token.ErrNoToken) {
		t.Error("token store written on a failed login")
	}
}

func TestLoginUnauthorizedFallbackMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("not json"))
	})

	err := client.Login(context.Background(), "a@b.com", "secret")
	if KindOf(err) != KindInvalidCredentials {
		t.Fatalf("expected invalid-credentials kind, got %v", err)
	}
	if err.Error() != "invalid credentials" {
		t.Errorf("expected fallback message, got %q", err.Error())
	}
}

func TestLoginServerErrorFallbackMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := client.Login(context.Background(), "a@b.com", "secret")
	if KindOf(err) != KindServer {
		t.Fatalf("expected server kind, got %v", err)
	}
	if err.Error() != "request failed with status 500" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestLoginConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	tokens := token.NewMemStore()
	client := New(srv.URL, tokens, testLogger())
	srv.Close() // nothing listening anymore

	err := client.Login(context.Background(), "a@b.com", "secret")
	if KindOf(err) != KindConnection {
		t.Fatalf("expected connection kind, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "connection error: ") {
		t.Errorf("unexpected message %q", err.Error())
	}
	if _, err := tokens.Get(context.Background()); !errors.Is(err, token.ErrNoToken) {
		t.Error("partial token written on transport failure")
	}
}

func TestRegisterValidationSkipsNetwork(t *testing.T) {
	var hits atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	})

	cases := []struct {
		name                                      string
		firstName, lastName, email, age, password string
	}{
		{"blank first name", "", "Doe", "a@b.com", "20", "longenough"},
		{"blank last name", "Jane", "", "a@b.com", "20", "longenough"},
		{"blank email", "Jane", "Doe", "", "20", "longenough"},
		{"non-numeric age", "Jane", "Doe", "a@b.com", "abc", "longenough"},
		{"under age", "Jane", "Doe", "a@b.com", "12", "longenough"},
		{"short password", "Jane", "Doe", "a@b.com", "20", "short"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := client.Register(context.Background(), tc.firstName, tc.lastName, tc.email, tc.age, tc.password)
			if KindOf(err) != KindValidation {
				t.Fatalf("expected validation kind, got %v", err)
			}
		})
	}

	if n := hits.Load(); n != 0 {
		t.Errorf("expected no network calls for validation failures, got %d", n)
	}
}

func TestRegisterSuccess(t *testing.T) {
	client, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/register" {
			t.Errorf("expected POST /register, got %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"account created"}`))
	})

	if err := client.Register(context.Background(), "Jane", "Doe", "a@b.com", "20", "longenough"); err != nil {
		t.Fatalf("register: %v", err)
	}
	// Registration never establishes a session.
	if _, err := tokens.Get(context.Background()); !errors.Is(err, token.ErrNoToken) {
		t.Error("token stored on registration")
	}
}

func TestRegisterConflict(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	err := client.Register(context.Background(), "Jane", "Doe", "a@b.com", "20", "longenough")
	if KindOf(err) != KindConflict {
		t.Fatalf("expected conflict kind, got %v", err)
	}
	if err.Error() != "this email is already registered" {
		t.Errorf("unexpected fallback message %q", err.Error())
	}
}

func TestRegisterBadRequestWithMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"email looks wrong"}`))
	})

	err := client.Register(context.Background(), "Jane", "Doe", "a@b.com", "20", "longenough")
	if KindOf(err) != KindServer {
		t.Fatalf("expected server kind, got %v", err)
	}
	if err.Error() != "email looks wrong" {
		t.Errorf("expected server-provided message, got %q", err.Error())
	}
}
