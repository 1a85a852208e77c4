// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/recipe-keeper/internal/adapter"
	"github.com/MKhiriev/recipe-keeper/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. Unrecognised errors pass through unchanged, including
// [adapter.ErrNetwork], which the UI matches directly for its connectivity
// message.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgFileTooLarge:
			return ErrFileTooLarge
		case app.MsgUnsupportedFileType:
			return ErrUnsupportedFileType
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrSessionExpired

	case errors.Is(err, adapter.ErrForbidden):
		return ErrNotRecipeAuthor

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgUserNotFound:
			return ErrUserLookupFailed
		case app.MsgRecipeNotFound:
			return ErrRecipeNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgUsernameAlreadyTaken {
			return ErrUsernameTaken
		}
	}

	return err
}

// extractBody extracts the server message from an error of the form
// "create user: conflict: username already taken".
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.LastIndex(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
