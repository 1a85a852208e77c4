// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// recipe-keeper client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Backend holds the recipe platform API endpoint settings.
	Backend Backend `envPrefix:"BACKEND_"`

	// Identity holds the external identity provider settings.
	Identity Identity `envPrefix:"IDENTITY_"`

	// Storage holds configuration for the local client cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Backend holds endpoint settings for the recipe platform HTTP API.
type Backend struct {
	// BaseURL is the API root every endpoint path is appended to
	// (e.g. "https://api.recipe-keeper.example").
	// Env: BACKEND_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the per-request timeout for outbound API calls
	// (e.g. "15s", "1m").
	// Env: BACKEND_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Identity holds settings for the external identity provider that issues the
// ID tokens exchanged for backend sessions.
type Identity struct {
	// APIKey is the project API key appended to every identity provider
	// call. Must be kept confidential.
	// Env: IDENTITY_API_KEY
	APIKey string `env:"API_KEY"`

	// AuthURL is the base URL of the account endpoints
	// (sign-in, sign-up, delete).
	// Env: IDENTITY_AUTH_URL
	AuthURL string `env:"AUTH_URL"`

	// TokenURL is the base URL of the refresh-grant endpoint used to trade
	// a refresh token for a fresh ID token.
	// Env: IDENTITY_TOKEN_URL
	TokenURL string `env:"TOKEN_URL"`

	// Persistence selects where the identity refresh token lives between
	// runs: "local" stores it in the client cache, "none" keeps it in
	// memory only.
	// Env: IDENTITY_PERSISTENCE
	Persistence string `env:"PERSISTENCE"`

	// TokenSkew is subtracted from the ID token expiry when deciding
	// whether a cached token is still usable (e.g. "30s").
	// Env: IDENTITY_TOKEN_SKEW
	TokenSkew time.Duration `env:"TOKEN_SKEW"`
}

// Storage groups the configuration for the client-side cache backends.
type Storage struct {
	// DB holds the local SQLite cache settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite cache.
type DB struct {
	// DSN is the SQLite file path used for the session cache
	// (e.g. "recipe-keeper.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// SessionRefreshInterval defines how often the background job extends
	// the backend session while a user is authenticated.
	// Env: WORKERS_SESSION_REFRESH_INTERVAL
	SessionRefreshInterval time.Duration `env:"SESSION_REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
