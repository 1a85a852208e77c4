package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/identity"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

type httpBackendAdapter struct {
	client *resty.Client

	// raw has no base URL, cookie jar, or token handling. Used for signed
	// upload URLs and public file URLs, which carry their own authorization.
	raw *resty.Client

	tokens identity.Provider
	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs an HTTP/REST implementation of
// [BackendAdapter]. It normalises and validates the base URL from
// cfg.BaseURL, configures the underlying client with the resolved base URL,
// request timeout, and a cookie jar so the backend-issued session cookie
// round-trips on every call.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPBackendAdapter(cfg config.ClientBackend, tokens identity.Provider, log *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend base url: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetCookieJar(jar)

	return &httpBackendAdapter{
		client: client,
		raw:    resty.New().SetTimeout(cfg.RequestTimeout),
		tokens: tokens,
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Request implements [BackendAdapter]. See the interface documentation for
// the full contract; the retry re-enters this method with NoRetry set, so at
// most two attempts ever leave for one logical call.
func (h *httpBackendAdapter) Request(ctx context.Context, endpoint string, opts RequestOptions) (Response, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID())
	for key, value := range opts.Headers {
		req.SetHeader(key, value)
	}
	if len(opts.Params) > 0 {
		req.SetQueryParamsFromValues(encodeParams(opts.Params))
	}

	if opts.Body != nil {
		if _, raw := opts.Body.([]byte); !raw && req.Header.Get("Content-Type") == "" {
			req.SetHeader("Content-Type", "application/json")
		}
		req.SetBody(opts.Body)
	}

	// A token failure never blocks the call: the request is sent without
	// the header and the backend decides whether it was required.
	tokenAttached := false
	if _, signedIn := h.tokens.CurrentUser(); signedIn {
		token, err := h.tokens.IDToken(ctx, true)
		if err != nil {
			h.logger.Warn().Err(err).Str("endpoint", endpoint).Msg("proceeding without auth token")
		} else {
			req.SetHeader("Authorization", "Bearer "+token)
			tokenAttached = true
		}
	}

	resp, err := req.Execute(method, endpoint)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	if resp.StatusCode() == http.StatusUnauthorized && !opts.NoRetry && tokenAttached {
		retry := opts
		retry.NoRetry = true
		return h.Request(ctx, endpoint, retry)
	}

	if err = mapHTTPError(resp); err != nil {
		return Response{}, err
	}

	return Response{
		StatusCode:  resp.StatusCode(),
		ContentType: resp.Header().Get("Content-Type"),
		Body:        resp.Body(),
	}, nil
}

// Image reports whether the body is a binary image payload rather than JSON.
func (r Response) Image() bool {
	return strings.HasPrefix(r.ContentType, "image/")
}

// encodeParams flattens a params map into query values: slices add one
// repeated key per element, nil values are dropped, everything else is
// stringified.
func encodeParams(params map[string]any) url.Values {
	values := url.Values{}
	for key, value := range params {
		if value == nil {
			continue
		}
		switch v := value.(type) {
		case []string:
			for _, item := range v {
				values.Add(key, item)
			}
		case []int:
			for _, item := range v {
				values.Add(key, fmt.Sprint(item))
			}
		case []any:
			for _, item := range v {
				if item == nil {
					continue
				}
				values.Add(key, fmt.Sprint(item))
			}
		default:
			values.Add(key, fmt.Sprint(v))
		}
	}
	return values
}

// decodeJSON unmarshals a response body into out. A 204 or empty body leaves
// out at its zero value.
func decodeJSON(resp Response, out any) error {
	if resp.StatusCode == http.StatusNoContent || len(resp.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// requestID generates a time-ordered id for request correlation in the
// backend's logs.
func requestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
