// Package config loads configuration for both binaries from the
// environment. Transport endpoints and file paths are configuration,
// not core logic.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Server configures cmd/server, the development auth backend.
type Server struct {
	HTTPAddr string     `env:"HTTP_ADDR" envDefault:":8080"`
	DBPath   string     `env:"DB_PATH" envDefault:"data/auth.db"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}

// Client configures cmd/quizzer, the terminal quiz client.
type Client struct {
	APIBaseURL  string     `env:"API_BASE_URL" envDefault:"http://localhost:8080/v1"`
	TokenDBPath string     `env:"TOKEN_DB_PATH" envDefault:"data/quizzer.db"`
	LogLevel    slog.Level `env:"LOG_LEVEL" envDefault:"WARN"`
}

func LoadServer() (*Server, error) {
	cfg, err := env.ParseAs[Server]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}

func LoadClient() (*Client, error) {
	cfg, err := env.ParseAs[Client]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
