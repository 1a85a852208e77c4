// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; the structured config is validated through
// the client view in [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Backend.BaseURL == "" {
		return ErrInvalidBackendConfigs
	}

	if cfg.Identity.APIKey == "" || cfg.Identity.AuthURL == "" || cfg.Identity.TokenURL == "" {
		return ErrInvalidIdentityConfigs
	}

	if cfg.Identity.Persistence != PersistenceLocal && cfg.Identity.Persistence != PersistenceNone {
		return ErrInvalidIdentityConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
