// Package app is the terminal shell around the quiz engine and the
// auth client: a small named-route graph of screens, each reading form
// input and handing control to the next route.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/codequizzer/quizapp/internal/authclient"
	"github.com/codequizzer/quizapp/internal/quiz"
	"github.com/codequizzer/quizapp/internal/token"
)

const (
	routeLogin    = "login"
	routeRegister = "register"
	routeWelcome  = "welcome"
	routeQuit     = "quit"
)

// App owns the screen loop. Collaborators are injected; the app never
// reaches for globals.
type App struct {
	in     *bufio.Scanner
	out    io.Writer
	auth   *authclient.Client
	tokens token.Store
	logger *slog.Logger

	username    string
	revealDelay time.Duration
}

// Option configures the App.
type Option func(*App)

// WithRevealDelay shortens the quiz reveal delay. Tests use this to
// avoid waiting a full second per question.
func WithRevealDelay(d time.Duration) Option {
	return func(a *App) { a.revealDelay = d }
}

func New(in io.Reader, out io.Writer, auth *authclient.Client, tokens token.Store, logger *slog.Logger, opts ...Option) *App {
	a := &App{
		in:          bufio.NewScanner(in),
		out:         out,
		auth:        auth,
		tokens:      tokens,
		logger:      logger,
		username:    "guest",
		revealDelay: quiz.DefaultRevealDelay,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run drives the route graph until the learner quits or input ends.
// A stored token from a previous run skips the login screen.
func (a *App) Run(ctx context.Context) error {
	route := routeLogin
	if _, err := a.tokens.Get(ctx); err == nil {
		route = routeWelcome + "/" + a.username
	}

	for route != routeQuit {
		next, err := a.dispatch(ctx, route)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		route = next
	}
	return nil
}

// dispatch resolves a symbolic route name, e.g. "welcome/{username}" or
// "categoria3", to its screen.
func (a *App) dispatch(ctx context.Context, route string) (string, error) {
	name, arg, _ := strings.Cut(route, "/")
	switch name {
	case routeLogin:
		return a.loginScreen(ctx)
	case routeRegister:
		return a.registerScreen(ctx)
	case routeWelcome:
		if arg == "" {
			arg = a.username
		}
		return a.welcomeScreen(ctx, arg)
	default:
		if cat, ok := quiz.CategoryBySlug(name); ok {
			return a.categoryScreen(ctx, cat)
		}
		return "", fmt.Errorf("unknown route %q", route)
	}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// readLine prompts and reads one trimmed input line. io.EOF ends the app.
func (a *App) readLine(prompt string) (string, error) {
	a.printf("%s", prompt)
	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(a.in.Text()), nil
}

// banner renders a failure the way the screens surface every error:
// as a displayable message, never a crash.
func (a *App) banner(err error) {
	a.printf("\n  ! %s\n\n", err.Error())
}
