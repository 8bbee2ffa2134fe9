// Package authclient talks to the remote auth API: login and
// registration, with the error taxonomy the screens render from.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/codequizzer/quizapp/internal/token"
)

// requestTimeout bounds each auth request end to end.
const requestTimeout = 30 * time.Second

// minPasswordLen and minAge are the local registration rules checked
// before any network call.
const (
	minPasswordLen = 8
	minAge         = 13
)

// Client issues login and registration requests. Collaborators are
// injected: the token store receives the token on successful login
// before the caller is told to proceed.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  token.Store
	logger  *slog.Logger
}

func New(baseURL string, tokens token.Store, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
		tokens:  tokens,
		logger:  logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Age       int    `json:"age"`
	Password  string `json:"password"`
}

// Login exchanges credentials for a session token. On success the token
// is saved to the store before Login returns, so the caller's next step
// (navigation) can assume it is durable. Failures come back as *Error.
func (c *Client) Login(ctx context.Context, email, password string) error {
	resp, err := c.post(ctx, "/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return &Error{Kind: KindConnection, Message: "connection error: " + err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := extractMessage(resp.Body)
		if resp.StatusCode == http.StatusUnauthorized {
			if msg == "" {
				msg = "invalid credentials"
			}
			return &Error{Kind: KindInvalidCredentials, Message: msg}
		}
		if msg == "" {
			msg = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return &Error{Kind: KindServer, Message: msg}
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil || lr.Token == "" {
		return &Error{Kind: KindServer, Message: "malformed login response"}
	}

	if err := c.tokens.Save(ctx, lr.Token); err != nil {
		c.logger.Error("saving token failed", "error", err)
		return &Error{Kind: KindServer, Message: "could not store session token"}
	}

	c.logger.Info("login succeeded", "email", email)
	return nil
}

// Register creates an account. Local validation runs first and fails
// without touching the network. Age arrives as the raw form field, so
// a non-numeric value is a validation failure, not a request. Success
// does not establish a session; the caller logs in separately.
func (c *Client) Register(ctx context.Context, firstName, lastName, email, age, password string) error {
	ageN, ageErr := strconv.Atoi(strings.TrimSpace(age))
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" ||
		strings.TrimSpace(email) == "" || password == "" || ageErr != nil {
		return &Error{Kind: KindValidation, Message: "all fields are required and age must be a number"}
	}
	if ageN < minAge {
		return &Error{Kind: KindValidation, Message: fmt.Sprintf("you must be at least %d years old to register", minAge)}
	}
	if len(password) < minPasswordLen {
		return &Error{Kind: KindValidation, Message: fmt.Sprintf("password must be at least %d characters", minPasswordLen)}
	}

	resp, err := c.post(ctx, "/register", registerRequest{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Age:       ageN,
		Password:  password,
	})
	if err != nil {
		return &Error{Kind: KindConnection, Message: "connection error: " + err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		c.logger.Info("registration succeeded", "email", email)
		return nil
	}

	msg := extractMessage(resp.Body)
	switch resp.StatusCode {
	case http.StatusConflict:
		if msg == "" {
			msg = "this email is already registered"
		}
		return &Error{Kind: KindConflict, Message: msg}
	case http.StatusBadRequest:
		if msg == "" {
			msg = "invalid registration data"
		}
		return &Error{Kind: KindServer, Message: msg}
	default:
		if msg == "" {
			msg = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return &Error{Kind: KindServer, Message: msg}
	}
}

func (c *Client) post(ctx context.Context, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.http.Do(req)
}

// extractMessage pulls the human-readable reason out of a non-2xx body.
// The body may be a JSON object {message}; anything else yields "" and
// the caller falls back to a fixed message.
func extractMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 64<<10))
	if err != nil {
		return ""
	}
	var em struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &em); err != nil {
		return ""
	}
	return em.Message
}
