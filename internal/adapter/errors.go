package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrRequestFailed wraps any non-2xx status without a dedicated sentinel.
	// The wrapped message is the server's error field when the body carries
	// one.
	ErrRequestFailed = errors.New("request failed")

	// ErrNetwork marks transport-level failures (connection refused, DNS,
	// timeout). Callers match it to show a connectivity message instead of
	// the raw transport error.
	ErrNetwork = errors.New("network error: check your connection")
)
