// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the recipe platform backend.
//
// The primary abstraction is [BackendAdapter], which decouples the service
// layer from the wire protocol. The package ships an HTTP/REST implementation
// ([NewHTTPBackendAdapter]) built around a single generic entry point,
// [BackendAdapter.Request]: it attaches a force-refreshed bearer token when a
// principal is signed in, round-trips the backend session cookie, encodes
// query parameters, and retries exactly once after a 401 by refreshing the
// token again.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNetwork] for transport
// failures).
package adapter

import (
	"context"

	"github.com/MKhiriev/recipe-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// RequestOptions configures a single call through [BackendAdapter.Request].
// The zero value is a GET with no body, headers, or query parameters.
type RequestOptions struct {
	// Method is the HTTP method; empty means GET.
	Method string

	// Body is JSON-serialized unless it is a raw []byte payload, in which
	// case it is sent as-is and Headers must carry the content type.
	Body any

	// Headers are extra request headers, set before the bearer token.
	Headers map[string]string

	// Params become the query string: scalars are stringified, slices
	// produce one repeated key per element, nil values are omitted.
	Params map[string]any

	// NoRetry suppresses the automatic 401 retry. Set internally on the
	// retried request so a second 401 propagates instead of looping.
	NoRetry bool
}

// Response is the decoded-enough result of a successful request: the raw body
// plus the metadata needed to choose a decoding.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// BackendAdapter defines transport-agnostic communication with the recipe
// platform backend. Implementations own serialisation, token attachment,
// session-cookie handling, and mapping of transport errors to the sentinel
// values defined in this package.
type BackendAdapter interface {
	// Request is the single generic entry point every typed method is built
	// on. It attaches a freshly refreshed bearer token when a principal is
	// signed in (a token failure is logged and the request proceeds without
	// one), sends the session cookie, and on a 401 with retry enabled
	// re-issues the identical request exactly once after forcing another
	// token refresh. Transport failures return [ErrNetwork] (wrapped).
	Request(ctx context.Context, endpoint string, opts RequestOptions) (Response, error)

	// ExchangeSession trades an identity token for a backend session. The
	// backend sets the session cookie on the response and returns the
	// user's profile.
	ExchangeSession(ctx context.Context, idToken string) (models.UserView, error)

	// RefreshSession proactively extends the backend session with a fresh
	// identity token. Used by the periodic session refresh job.
	RefreshSession(ctx context.Context, idToken string) error

	// Logout invalidates the backend session.
	Logout(ctx context.Context) error

	// LookupEmailByUsername resolves a username to the email address it was
	// registered with, so username logins can be authenticated against the
	// identity provider.
	LookupEmailByUsername(ctx context.Context, username string) (string, error)

	// CreateUser creates the backend user profile for a just-registered
	// identity principal. Requires the bearer token of that principal.
	CreateUser(ctx context.Context, input models.SignUpInput) (models.UserView, error)

	// UpdateProfile sends a partial profile change and returns the fields
	// the backend echoed back.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.UserView, error)

	// GetUser fetches the public profile of the user identified by uid.
	GetUser(ctx context.Context, uid string) (models.UserView, error)

	// ListRecipes fetches a page of the public recipe feed. Zero limit uses
	// the backend default page size.
	ListRecipes(ctx context.Context, limit, offset int) ([]models.Recipe, error)

	// ListUserRecipes fetches the authenticated user's own recipes.
	ListUserRecipes(ctx context.Context) ([]models.Recipe, error)

	// GetRecipe fetches a single recipe by id.
	GetRecipe(ctx context.Context, id string) (models.Recipe, error)

	// CreateRecipe publishes a new recipe and returns the stored record.
	CreateRecipe(ctx context.Context, input models.RecipeInput) (models.Recipe, error)

	// UpdateRecipe replaces the recipe identified by id.
	UpdateRecipe(ctx context.Context, id string, input models.RecipeInput) (models.Recipe, error)

	// DeleteRecipe removes the recipe identified by id.
	DeleteRecipe(ctx context.Context, id string) error

	// SearchRecipes runs a filtered recipe search and returns one result
	// page plus the total match count.
	SearchRecipes(ctx context.Context, query models.SearchQuery) (models.SearchResponse, error)

	// RecipeImageUploadURL obtains a signed upload authorization for a
	// recipe cover photo.
	RecipeImageUploadURL(ctx context.Context, req models.UploadTicketRequest) (models.UploadTicket, error)

	// ProfileImageUploadURL obtains a signed upload authorization for the
	// user's avatar.
	ProfileImageUploadURL(ctx context.Context, req models.UploadTicketRequest) (models.UploadTicket, error)

	// ConfirmProfileImage tells the backend a profile-image upload finished
	// and returns the final public URL.
	ConfirmProfileImage(ctx context.Context, req models.ConfirmUploadRequest) (models.ConfirmUploadResponse, error)

	// UploadToSignedURL PUTs raw file bytes to a provider-issued signed URL.
	// The URL embeds its own authorization; no token or cookie is sent.
	UploadToSignedURL(ctx context.Context, uploadURL, contentType string, data []byte) error

	// DownloadImage fetches raw image bytes from a public file URL.
	DownloadImage(ctx context.Context, fileURL string) ([]byte, error)
}
