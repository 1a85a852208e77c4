// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON may be either strings ("30s") or raw nanosecond numbers.
	jsonBody := `{
		"backend": {
			"base_url": "https://api.recipe-keeper.example",
			"request_timeout": "15s"
		},
		"identity": {
			"api_key": "project_key",
			"auth_url": "https://identity.example/v1/accounts",
			"token_url": "https://securetoken.example/v1",
			"persistence": "local",
			"token_skew": "30s"
		},
		"storage": {
			"db": { "dsn": "recipe-keeper.db" }
		},
		"workers": {
			"session_refresh_interval": "5m"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

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

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_MalformedBody(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte("{oops"), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "string duration", input: `"1h30m"`, expected: 90 * time.Minute},
		{name: "numeric nanoseconds", input: `1000000000`, expected: time.Second},
		{name: "invalid string", input: `"not-a-duration"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}
