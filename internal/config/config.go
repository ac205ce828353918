// Package config loads configuration from the environment, after an
// optional .env file. One base-URL value selects the backend host for the
// client side; absence falls back to the default local endpoint rather
// than failing at startup (the historical strict variant is documented in
// DESIGN.md and not kept).
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultAPIURL is where a local json-server style backend listens.
const DefaultAPIURL = "http://localhost:3001"

// Server holds the agenda backend's settings.
type Server struct {
	Addr     string `env:"DRAREA_HTTP_ADDR" envDefault:":3001"`
	LogLevel string `env:"DRAREA_LOG_LEVEL" envDefault:"info"`
	// DatabaseDSN empty means the in-memory store.
	DatabaseDSN   string  `env:"DRAREA_DATABASE_DSN"`
	MigrationsDir string  `env:"DRAREA_MIGRATIONS_DIR" envDefault:"db/migrations"`
	RateRPS       float64 `env:"DRAREA_RATE_RPS" envDefault:"5"`
	RateBurst     int     `env:"DRAREA_RATE_BURST" envDefault:"10"`
}

// Client holds the CLI's settings.
type Client struct {
	APIURL string `env:"DRAREA_API_URL"`
	// SessionDir empty means ~/.drarea.
	SessionDir string `env:"DRAREA_SESSION_DIR"`
}

// LoadServer parses server settings, loading .env first if present.
func LoadServer() (*Server, error) {
	_ = godotenv.Load()
	cfg := &Server{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadClient parses client settings, loading .env first if present.
func LoadClient() (*Client, error) {
	_ = godotenv.Load()
	cfg := &Client{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	return cfg, nil
}
