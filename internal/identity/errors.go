package identity

import "errors"

var (
	// ErrInvalidCredentials is returned when the provider rejects the
	// email/password pair.
	ErrInvalidCredentials = errors.New("identity provider rejected credentials")

	// ErrEmailTaken is returned by SignUp when the address already has an
	// account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrNoCurrentUser is returned by token operations when nobody is
	// signed in.
	ErrNoCurrentUser = errors.New("no current identity user")

	// ErrTokenRefresh is returned when the refresh grant fails, which
	// usually means the refresh token was revoked or expired.
	ErrTokenRefresh = errors.New("identity token refresh failed")
)
