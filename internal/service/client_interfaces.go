// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the client-side business logic of recipe-keeper.
//
// The central piece is [ClientSessionService]: it keeps the UserView
// consistent with two external sources of truth, the identity provider's
// local auth state and the backend's session validity, and owns every
// transition of the session state machine. [ClientRecipeService] and
// [ClientUploadService] are thin wrappers over the backend adapter that
// translate transport errors into business errors; [ClientSessionJob] keeps
// an established session alive in the background.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/recipe-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/servicemock/client_services_mock.go -package=servicemock

// SessionState is the session service's three-state machine. The initial
// state is [StateUnknown] until the first restore attempt resolves; every
// later transition lands on [StateAuthenticated] or [StateUnauthenticated].
type SessionState int

const (
	// StateUnknown means the persisted session has not been checked yet.
	StateUnknown SessionState = iota
	// StateAuthenticated means a UserView is set and a backend session is
	// established.
	StateAuthenticated
	// StateUnauthenticated means nobody is signed in.
	StateUnauthenticated
)

func (s SessionState) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// ClientSessionService owns the authenticated-user view-state. The UserView
// and the session state always change together, never independently, and the
// service is the view's only writer.
type ClientSessionService interface {
	// State reports the current session state.
	State() SessionState

	// CurrentUser returns a copy of the UserView. The boolean is false
	// unless the state is [StateAuthenticated].
	CurrentUser() (models.UserView, bool)

	// Login authenticates identifier/password. A non-email identifier is
	// first resolved to an email through the backend username lookup. On
	// success the identity token is exchanged for a backend session and
	// the state becomes [StateAuthenticated]. Returns
	// [ErrInvalidCredentials], [ErrUserLookupFailed], or
	// [ErrSessionEstablishFailed] (all wrapped); any failure leaves the
	// state unchanged.
	Login(ctx context.Context, identifier, password string) error

	// SignUp creates the identity principal, then the backend profile
	// under that principal's token, then establishes a session. If the
	// backend profile creation fails, the just-created identity account is
	// deleted (best-effort, logged) and the backend error is returned.
	SignUp(ctx context.Context, input models.SignUpInput) error

	// Logout transitions to [StateUnauthenticated] synchronously and runs
	// the remote sign-out calls (backend logout, identity sign-out, cache
	// clear) in the background; their failures are logged, never surfaced.
	Logout(ctx context.Context) error

	// UpdateProfile sends a partial profile change and shallow-merges the
	// response into the UserView: returned fields overwrite, omitted
	// fields keep their prior value. Requires [StateAuthenticated].
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.UserView, error)

	// CheckSession resolves [StateUnknown] at startup: it resumes the
	// identity principal from the persisted refresh token and re-exchanges
	// a session. Any failure forces [StateUnauthenticated] and cleans up
	// the persisted session.
	CheckSession(ctx context.Context) error

	// RefreshSession proactively extends the backend session with a fresh
	// identity token. A rejected refresh is treated as a forced logout.
	// No-op unless the state is [StateAuthenticated].
	RefreshSession(ctx context.Context) error
}

// ClientRecipeService exposes recipe browsing, authoring, and search.
type ClientRecipeService interface {
	// Feed fetches a page of the public recipe feed.
	Feed(ctx context.Context, limit, offset int) ([]models.Recipe, error)

	// Mine fetches the authenticated user's own recipes.
	Mine(ctx context.Context) ([]models.Recipe, error)

	// Get fetches a single recipe. Returns [ErrRecipeNotFound] (wrapped)
	// when the id does not exist.
	Get(ctx context.Context, id string) (models.Recipe, error)

	// Create validates and publishes a new recipe. Blank ingredient and
	// step entries are dropped before submission; a missing title returns
	// [ErrRecipeTitleRequired].
	Create(ctx context.Context, input models.RecipeInput) (models.Recipe, error)

	// Update validates and replaces an existing recipe. Returns
	// [ErrNotRecipeAuthor] (wrapped) when the recipe belongs to someone
	// else.
	Update(ctx context.Context, id string, input models.RecipeInput) (models.Recipe, error)

	// Delete removes a recipe.
	Delete(ctx context.Context, id string) error

	// Search runs a filtered search and returns one result page.
	Search(ctx context.Context, query models.SearchQuery) (models.SearchResponse, error)
}

// ClientUploadService runs the two-step image upload flow: obtain a signed
// upload ticket from the backend, then PUT the raw bytes to the ticket URL.
type ClientUploadService interface {
	// UploadRecipeImage uploads a recipe cover photo and returns the
	// public file URL to store in the recipe.
	UploadRecipeImage(ctx context.Context, fileName, contentType string, data []byte) (string, error)

	// UploadProfileImage uploads an avatar, confirms it with the backend,
	// and returns the confirmed public URL.
	UploadProfileImage(ctx context.Context, fileName, contentType string, data []byte) (string, error)
}

// ClientSessionJob is a background worker that periodically refreshes the
// backend session while a user is authenticated.
type ClientSessionJob interface {
	// Start launches the background goroutine. It refreshes every
	// interval, defaulting to 5 minutes if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}
