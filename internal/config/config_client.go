// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Identity persistence modes accepted by [ClientIdentity.Persistence].
const (
	// PersistenceLocal stores the identity refresh token in the local
	// cache so a later run can resume the session without a password.
	PersistenceLocal = "local"
	// PersistenceNone keeps the refresh token in memory only.
	PersistenceNone = "none"
)

// ClientBackend holds network settings used by the client transport layer.
type ClientBackend struct {
	// BaseURL is the recipe platform API root.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientIdentity holds identity provider settings used by the client.
type ClientIdentity struct {
	// APIKey is the identity provider project key.
	APIKey string
	// AuthURL is the account-endpoint base URL.
	AuthURL string
	// TokenURL is the refresh-grant base URL.
	TokenURL string
	// Persistence is the refresh-token persistence mode
	// ([PersistenceLocal] or [PersistenceNone]).
	Persistence string
	// TokenSkew is the freshness margin applied to ID token expiry checks.
	TokenSkew time.Duration
}

// ClientDB contains local cache database settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client cache.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// SessionRefreshInterval defines how often the session refresh job runs.
	SessionRefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Backend contains API endpoint settings.
	Backend ClientBackend
	// Identity contains identity provider settings.
	Identity ClientIdentity
	// Storage contains client cache settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills in defaults for optional settings,
// and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Backend: ClientBackend{
			BaseURL:        cfg.Backend.BaseURL,
			RequestTimeout: cfg.Backend.RequestTimeout,
		},
		Identity: ClientIdentity{
			APIKey:      cfg.Identity.APIKey,
			AuthURL:     cfg.Identity.AuthURL,
			TokenURL:    cfg.Identity.TokenURL,
			Persistence: cfg.Identity.Persistence,
			TokenSkew:   cfg.Identity.TokenSkew,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{SessionRefreshInterval: cfg.Workers.SessionRefreshInterval},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

// applyDefaults fills optional settings that have a sensible default so that
// only the backend URL and the identity project key are truly required.
func (cfg *ClientConfig) applyDefaults() {
	if cfg.Backend.RequestTimeout <= 0 {
		cfg.Backend.RequestTimeout = 15 * time.Second
	}
	if cfg.Identity.Persistence == "" {
		cfg.Identity.Persistence = PersistenceLocal
	}
	if cfg.Identity.TokenSkew <= 0 {
		cfg.Identity.TokenSkew = 30 * time.Second
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = "recipe-keeper.db"
	}
	if cfg.Workers.SessionRefreshInterval <= 0 {
		cfg.Workers.SessionRefreshInterval = 5 * time.Minute
	}
}
