package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/codequizzer/quizapp/internal/app"
	"github.com/codequizzer/quizapp/internal/authclient"
	"github.com/codequizzer/quizapp/internal/config"
	"github.com/codequizzer/quizapp/internal/database"
	"github.com/codequizzer/quizapp/internal/token"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	_ = godotenv.Load()

	cfg, err := config.LoadClient()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Diagnostics go to stderr so they never interleave with the screens.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	if dir := filepath.Dir(cfg.TokenDBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}
	}

	db, err := database.Open(ctx, cfg.TokenDBPath)
	if err != nil {
		return fmt.Errorf("opening token database: %w", err)
	}
	defer db.Close()

	tokens, err := token.NewSQLiteStore(ctx, db)
	if err != nil {
		return fmt.Errorf("initializing token store: %w", err)
	}

	auth := authclient.New(cfg.APIBaseURL, tokens, logger)

	return app.New(os.Stdin, os.Stdout, auth, tokens, logger).Run(ctx)
}
