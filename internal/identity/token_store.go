package identity

import "context"

type nopTokenStore struct{}

// NopTokenStore returns a [TokenStore] that persists nothing. Used in
// persistence mode "none", where the refresh token lives only in memory and
// every run starts with a fresh login.
func NopTokenStore() TokenStore {
	return nopTokenStore{}
}

func (nopTokenStore) SaveRefreshToken(context.Context, string, string) error { return nil }

func (nopTokenStore) LoadRefreshToken(context.Context) (string, string, error) {
	return "", "", nil
}

func (nopTokenStore) ClearRefreshToken(context.Context) error { return nil }
