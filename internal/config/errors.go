package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidBackendConfigs indicates invalid backend API settings
	// (for example, a missing base URL).
	ErrInvalidBackendConfigs = errors.New("invalid backend configuration")
	// ErrInvalidIdentityConfigs indicates invalid identity provider
	// settings (missing API key or endpoint URLs, or an unknown
	// persistence mode).
	ErrInvalidIdentityConfigs = errors.New("invalid identity configuration")
	// ErrInvalidStorageConfigs indicates invalid client cache settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
