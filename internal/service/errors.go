package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login when the identity
	// provider rejects the email/password pair. The UI maps it (and any
	// other login failure) to a generic "invalid email or password"
	// message.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserLookupFailed is returned by Login when a non-email identifier
	// cannot be resolved to an email address.
	ErrUserLookupFailed = errors.New("username lookup failed")

	// ErrSessionEstablishFailed is returned when the backend rejects the
	// identity-token exchange.
	ErrSessionEstablishFailed = errors.New("session establishment failed")

	// ErrSessionExpired is returned when the backend no longer recognises
	// the session and the retry did not recover it. The UI returns to the
	// login screen.
	ErrSessionExpired = errors.New("session expired")

	// ErrProfileUpdateFailed is returned by UpdateProfile when the backend
	// rejects the change; the UserView keeps its prior value.
	ErrProfileUpdateFailed = errors.New("profile update failed")

	// ErrNotAuthenticated is returned by operations that require an
	// established session.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrUsernameTaken is returned when signup or a profile update
	// requests a username another account already holds.
	ErrUsernameTaken = errors.New("username already taken")

	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrRecipeTitleRequired = errors.New("recipe title is required")
	ErrRecipeNotFound      = errors.New("recipe not found")
	ErrNotRecipeAuthor     = errors.New("only the author can modify a recipe")

	ErrFileTooLarge        = errors.New("file is too large")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)
