// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package identity provides the client for the external identity provider
// that authenticates recipe-keeper users and issues the ID tokens the backend
// exchanges for sessions.
//
// The primary abstraction is [Provider], which decouples the service layer
// from the provider's wire protocol. The package ships an HTTP implementation
// ([NewHTTPProvider]) speaking the Identity Toolkit REST dialect: password
// sign-in, password sign-up, account deletion, and a refresh-token grant.
//
// Error values defined in errors.go are mapped from provider error codes so
// that callers can use [errors.Is] for provider-agnostic error handling
// (e.g. [ErrInvalidCredentials] for a rejected password).
package identity

import (
	"context"

	"github.com/MKhiriev/recipe-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/identity_provider_mock.go -package=mock

// Provider defines the capability set the client consumes from the external
// identity provider. Implementations own the current principal: the token
// bundle of the most recent successful sign-in, sign-up, or resume.
type Provider interface {
	// SignIn authenticates email/password against the provider. On success
	// the returned token bundle becomes the current principal. Returns
	// [ErrInvalidCredentials] (wrapped) when the provider rejects the
	// password or does not know the email.
	SignIn(ctx context.Context, email, password string) (models.IdentityToken, error)

	// SignUp creates a new provider account for email/password. On success
	// the returned token bundle becomes the current principal. Returns
	// [ErrEmailTaken] (wrapped) when the address is already registered.
	SignUp(ctx context.Context, email, password string) (models.IdentityToken, error)

	// SignOut drops the current principal and, in local persistence mode,
	// removes the persisted refresh token. It never fails on remote state:
	// the provider keeps no server-side session for password accounts.
	SignOut(ctx context.Context) error

	// DeleteAccount permanently removes the current principal's provider
	// account. Used to compensate a failed signup: the provider account is
	// deleted when the backend profile could not be created.
	DeleteAccount(ctx context.Context) error

	// CurrentUser reports the current principal, if any. The boolean is
	// false when nobody is signed in.
	CurrentUser() (models.IdentityToken, bool)

	// IDToken returns an ID token for the current principal. When force is
	// true, or the cached token is within the configured skew of expiry,
	// the refresh grant is executed first. Returns [ErrNoCurrentUser] when
	// nobody is signed in and [ErrTokenRefresh] when the grant fails.
	IDToken(ctx context.Context, force bool) (string, error)

	// Resume restores the principal from a previously persisted refresh
	// token by executing the refresh grant once. Used at startup in local
	// persistence mode.
	Resume(ctx context.Context, refreshToken string) error
}

// TokenStore persists the refresh token between runs when the persistence
// mode allows it. The store implementation lives in internal/store; a no-op
// store is used in persistence mode "none".
type TokenStore interface {
	// SaveRefreshToken stores token for uid, replacing any previous one.
	SaveRefreshToken(ctx context.Context, uid, token string) error

	// LoadRefreshToken returns the stored token, or empty strings when
	// nothing is persisted.
	LoadRefreshToken(ctx context.Context) (uid, token string, err error)

	// ClearRefreshToken removes any persisted token.
	ClearRefreshToken(ctx context.Context) error
}
