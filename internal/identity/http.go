package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/models"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

// defaultTokenSkew keeps a freshness margin so a token is never presented to
// the backend moments before it expires.
const defaultTokenSkew = 30 * time.Second

type httpProvider struct {
	authClient  *resty.Client
	tokenClient *resty.Client
	apiKey      string
	skew        time.Duration
	store       TokenStore
	logger      *logger.Logger

	mu      sync.RWMutex
	current *models.IdentityToken
}

// signInRequest is the body of the password sign-in and sign-up calls.
type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

// tokenResponse covers both the account endpoints (camelCase fields) and the
// refresh grant (snake_case fields).
type tokenResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
	LocalID      string `json:"localId"`
	Email        string `json:"email"`

	GrantIDToken      string `json:"id_token"`
	GrantRefreshToken string `json:"refresh_token"`
	GrantExpiresIn    string `json:"expires_in"`
	GrantUserID       string `json:"user_id"`
}

// NewHTTPProvider creates a [Provider] speaking the Identity Toolkit REST
// dialect. cfg supplies the account and refresh-grant base URLs plus the
// project API key; store receives the refresh token after every successful
// sign-in or refresh (pass a no-op store for persistence mode "none").
func NewHTTPProvider(cfg config.ClientIdentity, store TokenStore, log *logger.Logger) (Provider, error) {
	if cfg.AuthURL == "" || cfg.TokenURL == "" {
		return nil, errors.New("identity provider URLs are not configured")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("identity provider API key is not configured")
	}

	skew := cfg.TokenSkew
	if skew <= 0 {
		skew = defaultTokenSkew
	}

	return &httpProvider{
		authClient:  resty.New().SetBaseURL(strings.TrimRight(cfg.AuthURL, "/")),
		tokenClient: resty.New().SetBaseURL(strings.TrimRight(cfg.TokenURL, "/")),
		apiKey:      cfg.APIKey,
		skew:        skew,
		store:       store,
		logger:      log,
	}, nil
}

func (p *httpProvider) SignIn(ctx context.Context, email, password string) (models.IdentityToken, error) {
	return p.authCall(ctx, "/accounts:signInWithPassword", email, password)
}

func (p *httpProvider) SignUp(ctx context.Context, email, password string) (models.IdentityToken, error) {
	return p.authCall(ctx, "/accounts:signUp", email, password)
}

func (p *httpProvider) authCall(ctx context.Context, endpoint, email, password string) (models.IdentityToken, error) {
	var body tokenResponse
	resp, err := p.authClient.R().
		SetContext(ctx).
		SetQueryParam("key", p.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(signInRequest{Email: email, Password: password, ReturnSecureToken: true}).
		SetResult(&body).
		Post(endpoint)
	if err != nil {
		return models.IdentityToken{}, fmt.Errorf("identity provider request: %w", err)
	}
	if err = mapProviderError(resp); err != nil {
		return models.IdentityToken{}, err
	}

	token := models.IdentityToken{
		IDToken:      body.IDToken,
		RefreshToken: body.RefreshToken,
		UID:          body.LocalID,
		Email:        body.Email,
		ExpiresAt:    expiryFrom(body.IDToken, body.ExpiresIn),
	}
	if token.Email == "" {
		token.Email = email
	}

	p.setCurrent(token)
	p.persistRefreshToken(ctx, token)

	return token, nil
}

func (p *httpProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	p.current = nil
	p.mu.Unlock()

	if err := p.store.ClearRefreshToken(ctx); err != nil {
		p.logger.Warn().Err(err).Msg("failed to clear persisted refresh token")
	}
	return nil
}

func (p *httpProvider) DeleteAccount(ctx context.Context) error {
	current, ok := p.CurrentUser()
	if !ok {
		return ErrNoCurrentUser
	}

	resp, err := p.authClient.R().
		SetContext(ctx).
		SetQueryParam("key", p.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"idToken": current.IDToken}).
		Post("/accounts:delete")
	if err != nil {
		return fmt.Errorf("identity account delete request: %w", err)
	}
	if err = mapProviderError(resp); err != nil {
		return err
	}

	return p.SignOut(ctx)
}

func (p *httpProvider) CurrentUser() (models.IdentityToken, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.current == nil {
		return models.IdentityToken{}, false
	}
	return *p.current, true
}

func (p *httpProvider) IDToken(ctx context.Context, force bool) (string, error) {
	current, ok := p.CurrentUser()
	if !ok {
		return "", ErrNoCurrentUser
	}

	if !force && current.Valid(p.skew) {
		return current.IDToken, nil
	}

	refreshed, err := p.refreshGrant(ctx, current.RefreshToken)
	if err != nil {
		return "", err
	}
	// UID and email are not echoed by the grant in every case.
	if refreshed.UID == "" {
		refreshed.UID = current.UID
	}
	refreshed.Email = current.Email

	p.setCurrent(refreshed)
	p.persistRefreshToken(ctx, refreshed)

	return refreshed.IDToken, nil
}

func (p *httpProvider) Resume(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return ErrNoCurrentUser
	}

	token, err := p.refreshGrant(ctx, refreshToken)
	if err != nil {
		return err
	}

	p.setCurrent(token)
	p.persistRefreshToken(ctx, token)

	return nil
}

func (p *httpProvider) refreshGrant(ctx context.Context, refreshToken string) (models.IdentityToken, error) {
	var body tokenResponse
	resp, err := p.tokenClient.R().
		SetContext(ctx).
		SetQueryParam("key", p.apiKey).
		SetFormData(map[string]string{
			"grant_type":    "refresh_token",
			"refresh_token": refreshToken,
		}).
		SetResult(&body).
		Post("/token")
	if err != nil {
		return models.IdentityToken{}, fmt.Errorf("%w: %v", ErrTokenRefresh, err)
	}
	if resp.IsError() {
		return models.IdentityToken{}, fmt.Errorf("%w: %s", ErrTokenRefresh, providerErrorCode(resp))
	}

	return models.IdentityToken{
		IDToken:      body.GrantIDToken,
		RefreshToken: body.GrantRefreshToken,
		UID:          body.GrantUserID,
		ExpiresAt:    expiryFrom(body.GrantIDToken, body.GrantExpiresIn),
	}, nil
}

func (p *httpProvider) setCurrent(token models.IdentityToken) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = &token
}

// persistRefreshToken is best-effort: a persistence failure degrades the next
// start to a fresh login, it never fails the current operation.
func (p *httpProvider) persistRefreshToken(ctx context.Context, token models.IdentityToken) {
	if token.RefreshToken == "" {
		return
	}
	if err := p.store.SaveRefreshToken(ctx, token.UID, token.RefreshToken); err != nil {
		p.logger.Warn().Err(err).Str("uid", token.UID).Msg("failed to persist refresh token")
	}
}

// expiryFrom derives the ID token expiry from the provider's expires_in
// seconds field, falling back to the token's own exp claim when the field is
// absent or malformed. A zero time means the expiry is unknown.
func expiryFrom(idToken, expiresIn string) time.Time {
	if secs, err := strconv.ParseInt(expiresIn, 10, 64); err == nil && secs > 0 {
		return time.Now().Add(time.Duration(secs) * time.Second)
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(idToken, jwt.MapClaims{})
	if err != nil {
		return time.Time{}
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// providerErrorBody is the provider's error envelope:
// {"error":{"code":400,"message":"EMAIL_NOT_FOUND"}}.
type providerErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func mapProviderError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	code := providerErrorCode(resp)

	switch {
	case code == "EMAIL_NOT_FOUND",
		code == "INVALID_PASSWORD",
		code == "INVALID_LOGIN_CREDENTIALS",
		strings.HasPrefix(code, "USER_DISABLED"):
		return fmt.Errorf("%w: %s", ErrInvalidCredentials, code)
	case code == "EMAIL_EXISTS":
		return fmt.Errorf("%w: %s", ErrEmailTaken, code)
	default:
		return fmt.Errorf("identity provider error %d: %s", resp.StatusCode(), code)
	}
}

func providerErrorCode(resp *resty.Response) string {
	var body providerErrorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error.Message != "" {
		return body.Error.Message
	}

	text := strings.TrimSpace(string(resp.Body()))
	if text == "" {
		text = http.StatusText(resp.StatusCode())
	}
	return text
}
