// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// recipe-keeper client.
//
// All Msg* constants are the human-readable message strings the backend
// writes into error response bodies. The service layer matches on them when
// translating transport errors into business errors, so the wording must
// stay in sync with the backend API.
package app

const (
	// MsgInvalidDataProvided is returned when a request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgUserNotFound is returned by the username lookup when no account
	// matches the requested username.
	MsgUserNotFound = "user not found"

	// MsgUsernameAlreadyTaken is returned when profile creation or a
	// profile update requests a username that another account holds.
	MsgUsernameAlreadyTaken = "username already taken"

	// MsgSessionExpired is returned when the session cookie is missing,
	// expired, or revoked.
	MsgSessionExpired = "session expired"

	// MsgInvalidIDToken is returned by the session exchange when the
	// identity token fails verification.
	MsgInvalidIDToken = "invalid token"

	// MsgRecipeNotFound is returned when the requested recipe id does not
	// exist or was deleted.
	MsgRecipeNotFound = "recipe not found"

	// MsgNotRecipeAuthor is returned when a user tries to modify or delete
	// a recipe they did not publish.
	MsgNotRecipeAuthor = "not the author"

	// MsgFileTooLarge is returned when an upload-ticket request exceeds the
	// backend's file size limit.
	MsgFileTooLarge = "file too large"

	// MsgUnsupportedFileType is returned when an upload-ticket request
	// names a content type the backend does not accept for images.
	MsgUnsupportedFileType = "unsupported file type"
)
