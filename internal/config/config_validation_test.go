package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		Backend: ClientBackend{
			BaseURL:        "https://api.recipe-keeper.example",
			RequestTimeout: 15 * time.Second,
		},
		Identity: ClientIdentity{
			APIKey:      "project_key",
			AuthURL:     "https://identity.example/v1/accounts",
			TokenURL:    "https://securetoken.example/v1",
			Persistence: PersistenceLocal,
			TokenSkew:   30 * time.Second,
		},
		Storage: ClientStorage{DB: ClientDB{DSN: "recipe-keeper.db"}},
		Workers: ClientWorkers{SessionRefreshInterval: 5 * time.Minute},
	}
}

func TestClientConfigValidate_Valid(t *testing.T) {
	require.NoError(t, validClientConfig().validate())
}

func TestClientConfigValidate_MissingBackendURL(t *testing.T) {
	cfg := validClientConfig()
	cfg.Backend.BaseURL = ""

	assert.ErrorIs(t, cfg.validate(), ErrInvalidBackendConfigs)
}

func TestClientConfigValidate_MissingIdentityKey(t *testing.T) {
	cfg := validClientConfig()
	cfg.Identity.APIKey = ""

	assert.ErrorIs(t, cfg.validate(), ErrInvalidIdentityConfigs)
}

func TestClientConfigValidate_UnknownPersistenceMode(t *testing.T) {
	cfg := validClientConfig()
	cfg.Identity.Persistence = "session"

	assert.ErrorIs(t, cfg.validate(), ErrInvalidIdentityConfigs)
}

func TestClientConfigValidate_MissingDSN(t *testing.T) {
	cfg := validClientConfig()
	cfg.Storage.DB.DSN = ""

	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestApplyDefaults_FillsOptionalSettings(t *testing.T) {
	cfg := &ClientConfig{
		Backend:  ClientBackend{BaseURL: "https://api.example"},
		Identity: ClientIdentity{APIKey: "k", AuthURL: "a", TokenURL: "t"},
	}

	cfg.applyDefaults()

	assert.Equal(t, 15*time.Second, cfg.Backend.RequestTimeout)
	assert.Equal(t, PersistenceLocal, cfg.Identity.Persistence)
	assert.Equal(t, 30*time.Second, cfg.Identity.TokenSkew)
	assert.Equal(t, "recipe-keeper.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SessionRefreshInterval)
}
