package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Backend: Backend{BaseURL: "https://api.example"}},
		&StructuredConfig{Identity: Identity{APIKey: "key"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example", cfg.Backend.BaseURL)
	assert.Equal(t, "key", cfg.Identity.APIKey)
}

// TestBuild_SingleConfig verifies that a single config is returned as-is.
func TestBuild_SingleConfig(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Backend: Backend{BaseURL: "https://single.example", RequestTimeout: time.Minute},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://single.example", cfg.Backend.BaseURL)
	assert.Equal(t, time.Minute, cfg.Backend.RequestTimeout)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_AppendsOneConfig verifies that withEnv appends exactly one entry.
func TestWithEnv_AppendsOneConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.Len(t, b.configs, 1)
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "https://env.example")
	t.Setenv("IDENTITY_API_KEY", "env-key")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "https://env.example", b.configs[0].Backend.BaseURL)
	assert.Equal(t, "env-key", b.configs[0].Identity.APIKey)
}

// TestWithEnv_NoErrorOnEmptyEnv verifies that withEnv does not set b.err
// when no relevant env vars are present.
func TestWithEnv_NoErrorOnEmptyEnv(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.NoError(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_ReturnsBuilder verifies the fluent interface.
func TestWithJSON_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withJSON())
}

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Backend.BaseURL = "https://json.example"
	payload.Identity.APIKey = "json-key"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "https://json.example", b.configs[1].Backend.BaseURL)
	assert.Equal(t, "json-key", b.configs[1].Identity.APIKey)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_SetsError_WhenMalformedJSON verifies that invalid JSON content
// sets b.err.
func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})
	b.withJSON()

	assert.Error(t, b.err)
}
