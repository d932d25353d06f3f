// Copyright (c) 2025-2026 BookItNow Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	// APIBaseURL is the origin of the BookItNow ticketing API, e.g.
	// https://api.bookitnow.example. All data this client renders comes
	// from that API; the client itself owns no business data.
	APIBaseURL string `env:"BOOKITNOW_API_URL,required"`

	SessionSecret string `env:"BOOKITNOW_SESSION_SECRET,required"`
	SessionDBPath string `env:"BOOKITNOW_SESSION_DB_PATH" envDefault:"./data/sessions.db"`
	ServerHost    string `env:"BOOKITNOW_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"BOOKITNOW_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"BOOKITNOW_ENV" envDefault:"development"`
	LogLevel      string `env:"BOOKITNOW_LOG_LEVEL" envDefault:"info"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("BOOKITNOW_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	base, err := url.Parse(cfg.APIBaseURL)
	if err != nil || !base.IsAbs() || base.Host == "" {
		return nil, fmt.Errorf("BOOKITNOW_API_URL must be an absolute URL, got %q", cfg.APIBaseURL)
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")

	return cfg, nil
}
