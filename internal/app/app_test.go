package app

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/codequizzer/quizapp/internal/authclient"
	"github.com/codequizzer/quizapp/internal/token"
)

// newAuthAPI mimics the auth backend: /login succeeds for one known
// credential pair, /register always succeeds.
func newAuthAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var req struct{ Email, Password string }
		json.NewDecoder(r.Body).Decode(&req)
		if req.Email == "jane@example.com" && req.Password == "secret123" {
			w.Write([]byte(`{"token":"tok-1"}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"bad creds"}`))
	})
	mux.HandleFunc("/register", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusCreated)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func runScript(t *testing.T, tokens token.Store, script string) string {
	t.Helper()
	srv := newAuthAPI(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := authclient.New(srv.URL, tokens, logger)

	var out strings.Builder
	a := New(strings.NewReader(script), &out, client, tokens, logger,
		WithRevealDelay(time.Millisecond))

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("run: %v\noutput:\n%s", err, out.String())
	}
	return out.String()
}

func TestLoginFailureStaysOnScreen(t *testing.T) {
	out := runScript(t, token.NewMemStore(), strings.Join([]string{
		"1", "jane@example.com", "wrong", // rejected
		"q",
	}, "\n")+"\n")

	if !strings.Contains(out, "bad creds") {
		t.Errorf("expected the server's failure reason in output:\n%s", out)
	}
	if strings.Contains(out, "Welcome, jane@example.com") {
		t.Errorf("navigated past login on a failed attempt:\n%s", out)
	}
}

func TestLoginThenFullQuiz(t *testing.T) {
	tokens := token.NewMemStore()
	answers := make([]string, 10)
	for i := range answers {
		answers[i] = "1"
	}

	script := strings.Join(append([]string{
		"1", "jane@example.com", "secret123", // sign in
		"1", // Git Basics
	}, append(answers,
		"l", // log out
		"q",
	)...), "\n") + "\n"

	out := runScript(t, tokens, script)

	if !strings.Contains(out, "Welcome, jane@example.com!") {
		t.Errorf("expected welcome screen after login:\n%s", out)
	}
	if !strings.Contains(out, "Quiz finished!") {
		t.Errorf("expected the quiz to finish:\n%s", out)
	}
	if !strings.Contains(out, "Score: ") {
		t.Errorf("expected a score line:\n%s", out)
	}
	// Logout cleared the stored token.
	if _, err := tokens.Get(context.Background()); !errors.Is(err, token.ErrNoToken) {
		t.Error("expected token cleared after logout")
	}
}

func TestResumeSkipsLogin(t *testing.T) {
	tokens := token.NewMemStore()
	if err := tokens.Save(context.Background(), "tok-from-last-run"); err != nil {
		t.Fatal(err)
	}

	out := runScript(t, tokens, "q\n")

	if !strings.Contains(out, "Welcome, guest!") {
		t.Errorf("expected resume to land on the welcome screen:\n%s", out)
	}
	if strings.Contains(out, "=== Welcome to CodeQuizzer ===") {
		t.Errorf("login screen shown despite a stored token:\n%s", out)
	}
}

func TestRegistrationValidationMessage(t *testing.T) {
	out := runScript(t, token.NewMemStore(), strings.Join([]string{
		"2",                                                   // create an account
		"Jane", "Doe", "jane@example.com", "12", "longenough", // under age
		"Jane", "Doe", "jane@example.com", "20", "longenough", // retry, ok
		"q",
	}, "\n")+"\n")

	if !strings.Contains(out, "at least 13 years old") {
		t.Errorf("expected local validation message:\n%s", out)
	}
	if !strings.Contains(out, "Account created. Please sign in.") {
		t.Errorf("expected registration success to return to login:\n%s", out)
	}
}

func TestUnknownRoute(t *testing.T) {
	srv := newAuthAPI(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := token.NewMemStore()
	client := authclient.New(srv.URL, tokens, logger)
	a := New(strings.NewReader(""), &strings.Builder{}, client, tokens, logger)

	if _, err := a.dispatch(context.Background(), "categoria9"); err == nil {
		t.Fatal("expected an error for an unknown route")
	}
}
