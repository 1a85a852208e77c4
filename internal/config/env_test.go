// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"BACKEND_BASE_URL":        "https://api.recipe-keeper.example",
		"BACKEND_REQUEST_TIMEOUT": "15s",

		"IDENTITY_API_KEY":     "project_key",
		"IDENTITY_AUTH_URL":    "https://identity.example/v1/accounts",
		"IDENTITY_TOKEN_URL":   "https://securetoken.example/v1",
		"IDENTITY_PERSISTENCE": "local",
		"IDENTITY_TOKEN_SKEW":  "30s",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DATABASE_URI": "recipe-keeper.db",

		"WORKERS_SESSION_REFRESH_INTERVAL": "5m",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "https://api.recipe-keeper.example", cfg.Backend.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Backend.RequestTimeout)

	assert.Equal(t, "project_key", cfg.Identity.APIKey)
	assert.Equal(t, "https://identity.example/v1/accounts", cfg.Identity.AuthURL)
	assert.Equal(t, "https://securetoken.example/v1", cfg.Identity.TokenURL)
	assert.Equal(t, "local", cfg.Identity.Persistence)
	assert.Equal(t, 30*time.Second, cfg.Identity.TokenSkew)

	assert.Equal(t, "recipe-keeper.db", cfg.Storage.DB.DSN)

	assert.Equal(t, 5*time.Minute, cfg.Workers.SessionRefreshInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"BACKEND_BASE_URL": "https://api.recipe-keeper.example",
		"IDENTITY_API_KEY": "project_key",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "https://api.recipe-keeper.example", cfg.Backend.BaseURL)
	assert.Zero(t, cfg.Backend.RequestTimeout)

	assert.Equal(t, "project_key", cfg.Identity.APIKey)
	assert.Empty(t, cfg.Identity.AuthURL)
	assert.Empty(t, cfg.Identity.Persistence)

	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Workers.SessionRefreshInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"BACKEND_REQUEST_TIMEOUT": "not-a-duration",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"BACKEND_BASE_URL",
		"BACKEND_REQUEST_TIMEOUT",
		"IDENTITY_API_KEY",
		"IDENTITY_AUTH_URL",
		"IDENTITY_TOKEN_URL",
		"IDENTITY_PERSISTENCE",
		"IDENTITY_TOKEN_SKEW",
		"STORAGE_DB_DATABASE_URI",
		"WORKERS_SESSION_REFRESH_INTERVAL",
	}
	for _, k := range keys {
		require.NoError(t, os.Unsetenv(k))
	}
}
