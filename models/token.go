package models

import "time"

// IdentityToken is the credential bundle issued by the identity provider
// after a successful sign-in, sign-up, or refresh-grant call.
//
// The ID token is short-lived and is treated as ephemeral: it is fetched
// fresh (force-refreshed when near expiry) before every privileged backend
// call. The refresh token is long-lived and is what actually keeps the
// principal signed in between runs.
type IdentityToken struct {
	// IDToken is the signed identity assertion attached to backend
	// requests as a bearer credential.
	IDToken string `json:"idToken"`

	// RefreshToken is exchanged for a new ID token when the current one
	// expires. Persisted locally only when the persistence mode allows it.
	RefreshToken string `json:"refreshToken"`

	// UID is the provider-local account identifier.
	UID string `json:"localId"`

	// Email is the address the token was issued for.
	Email string `json:"email"`

	// ExpiresAt is the instant the ID token stops being accepted.
	// Derived from the provider's expires_in response field, falling back
	// to the token's own exp claim when the field is absent.
	ExpiresAt time.Time `json:"-"`
}

// Valid reports whether the ID token is present and not within the skew
// window of its expiry. A token failing this check must be refreshed before
// use.
func (t IdentityToken) Valid(skew time.Duration) bool {
	if t.IDToken == "" {
		return false
	}
	if t.ExpiresAt.IsZero() {
		return true
	}
	return time.Now().Add(skew).Before(t.ExpiresAt)
}
