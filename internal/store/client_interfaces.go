// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the client's local SQLite cache. It holds a single
// session row: the last UserView snapshot plus, in persistence mode "local",
// the identity refresh token. A restart reads the row to resume the session
// before the first network round-trip.
package store

import (
	"context"

	"github.com/MKhiriev/recipe-keeper/internal/identity"
	"github.com/MKhiriev/recipe-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/session_store_mock.go -package=mock

// SessionStore persists the local session snapshot. It also satisfies
// [identity.TokenStore], so the identity client can keep the refresh-token
// column current on every grant without knowing about the snapshot.
type SessionStore interface {
	identity.TokenStore

	// SaveSession writes the UserView snapshot and refresh token, replacing
	// any previous session.
	SaveSession(ctx context.Context, user models.UserView, refreshToken string) error

	// LoadSession returns the stored snapshot and refresh token. Returns
	// [ErrSessionNotFound] when no session is persisted.
	LoadSession(ctx context.Context) (models.UserView, string, error)

	// ClearSession removes the persisted session entirely.
	ClearSession(ctx context.Context) error
}
