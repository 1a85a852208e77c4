package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/recipe-keeper/models"
)

// ExchangeSession implements [BackendAdapter]. It POSTs the identity token to
// POST /auth/session and decodes the returned profile. The token travels in
// the body, so the 401 retry is suppressed: re-issuing the same body cannot
// succeed where the first attempt failed.
func (h *httpBackendAdapter) ExchangeSession(ctx context.Context, idToken string) (models.UserView, error) {
	resp, err := h.Request(ctx, "/auth/session", RequestOptions{
		Method:  http.MethodPost,
		Body:    models.SessionExchangeRequest{IDToken: idToken},
		NoRetry: true,
	})
	if err != nil {
		return models.UserView{}, fmt.Errorf("session exchange: %w", err)
	}

	var user models.UserView
	if err = decodeJSON(resp, &user); err != nil {
		return models.UserView{}, err
	}
	return user, nil
}

// RefreshSession implements [BackendAdapter]. It POSTs a fresh identity token
// to POST /auth/refresh so the backend extends the session cookie's lifetime.
func (h *httpBackendAdapter) RefreshSession(ctx context.Context, idToken string) error {
	_, err := h.Request(ctx, "/auth/refresh", RequestOptions{
		Method:  http.MethodPost,
		Body:    models.SessionExchangeRequest{IDToken: idToken},
		NoRetry: true,
	})
	if err != nil {
		return fmt.Errorf("session refresh: %w", err)
	}
	return nil
}

// Logout implements [BackendAdapter]. It POSTs to POST /auth/logout so the
// backend invalidates the session cookie. Retry is suppressed: logout is
// best-effort and a 401 already means there is no session to invalidate.
func (h *httpBackendAdapter) Logout(ctx context.Context) error {
	_, err := h.Request(ctx, "/auth/logout", RequestOptions{
		Method:  http.MethodPost,
		NoRetry: true,
	})
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// LookupEmailByUsername implements [BackendAdapter]. It POSTs the username to
// POST /users/by-username and returns the resolved email address.
func (h *httpBackendAdapter) LookupEmailByUsername(ctx context.Context, username string) (string, error) {
	resp, err := h.Request(ctx, "/users/by-username", RequestOptions{
		Method: http.MethodPost,
		Body:   models.UsernameLookupRequest{Username: username},
	})
	if err != nil {
		return "", fmt.Errorf("username lookup: %w", err)
	}

	var result models.UsernameLookupResponse
	if err = decodeJSON(resp, &result); err != nil {
		return "", err
	}
	return result.Email, nil
}

// CreateUser implements [BackendAdapter]. It POSTs the signup fields to
// POST /users under the just-registered principal's bearer token and returns
// the created profile.
func (h *httpBackendAdapter) CreateUser(ctx context.Context, input models.SignUpInput) (models.UserView, error) {
	resp, err := h.Request(ctx, "/users", RequestOptions{
		Method: http.MethodPost,
		Body:   input,
	})
	if err != nil {
		return models.UserView{}, fmt.Errorf("create user: %w", err)
	}

	var user models.UserView
	if err = decodeJSON(resp, &user); err != nil {
		return models.UserView{}, err
	}
	return user, nil
}

// UpdateProfile implements [BackendAdapter]. It PUTs the partial change to
// PUT /users/profile; nil fields stay out of the body and keep their server
// value. Returns whatever fields the backend echoed back.
func (h *httpBackendAdapter) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.UserView, error) {
	resp, err := h.Request(ctx, "/users/profile", RequestOptions{
		Method: http.MethodPut,
		Body:   update,
	})
	if err != nil {
		return models.UserView{}, fmt.Errorf("update profile: %w", err)
	}

	var user models.UserView
	if err = decodeJSON(resp, &user); err != nil {
		return models.UserView{}, err
	}
	return user, nil
}

// GetUser implements [BackendAdapter]. It GETs /users/{uid}.
func (h *httpBackendAdapter) GetUser(ctx context.Context, uid string) (models.UserView, error) {
	resp, err := h.Request(ctx, "/users/"+uid, RequestOptions{})
	if err != nil {
		return models.UserView{}, fmt.Errorf("get user: %w", err)
	}

	var user models.UserView
	if err = decodeJSON(resp, &user); err != nil {
		return models.UserView{}, err
	}
	return user, nil
}

// ListRecipes implements [BackendAdapter]. It GETs /recipes with optional
// paging parameters.
func (h *httpBackendAdapter) ListRecipes(ctx context.Context, limit, offset int) ([]models.Recipe, error) {
	params := map[string]any{}
	if limit > 0 {
		params["limit"] = limit
	}
	if offset > 0 {
		params["offset"] = offset
	}

	resp, err := h.Request(ctx, "/recipes", RequestOptions{Params: params})
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}

	var recipes []models.Recipe
	if err = decodeJSON(resp, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// ListUserRecipes implements [BackendAdapter]. It GETs /recipes/user; the
// backend infers the user from the session.
func (h *httpBackendAdapter) ListUserRecipes(ctx context.Context) ([]models.Recipe, error) {
	resp, err := h.Request(ctx, "/recipes/user", RequestOptions{})
	if err != nil {
		return nil, fmt.Errorf("list user recipes: %w", err)
	}

	var recipes []models.Recipe
	if err = decodeJSON(resp, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipe implements [BackendAdapter]. It GETs /recipes/{id}.
func (h *httpBackendAdapter) GetRecipe(ctx context.Context, id string) (models.Recipe, error) {
	resp, err := h.Request(ctx, "/recipes/"+id, RequestOptions{})
	if err != nil {
		return models.Recipe{}, fmt.Errorf("get recipe: %w", err)
	}

	var recipe models.Recipe
	if err = decodeJSON(resp, &recipe); err != nil {
		return models.Recipe{}, err
	}
	return recipe, nil
}

// CreateRecipe implements [BackendAdapter]. It POSTs the recipe fields to
// POST /recipes and returns the stored record with its assigned id.
func (h *httpBackendAdapter) CreateRecipe(ctx context.Context, input models.RecipeInput) (models.Recipe, error) {
	resp, err := h.Request(ctx, "/recipes", RequestOptions{
		Method: http.MethodPost,
		Body:   input,
	})
	if err != nil {
		return models.Recipe{}, fmt.Errorf("create recipe: %w", err)
	}

	var recipe models.Recipe
	if err = decodeJSON(resp, &recipe); err != nil {
		return models.Recipe{}, err
	}
	return recipe, nil
}

// UpdateRecipe implements [BackendAdapter]. It PUTs the full replacement to
// PUT /recipes/{id}.
func (h *httpBackendAdapter) UpdateRecipe(ctx context.Context, id string, input models.RecipeInput) (models.Recipe, error) {
	resp, err := h.Request(ctx, "/recipes/"+id, RequestOptions{
		Method: http.MethodPut,
		Body:   input,
	})
	if err != nil {
		return models.Recipe{}, fmt.Errorf("update recipe: %w", err)
	}

	var recipe models.Recipe
	if err = decodeJSON(resp, &recipe); err != nil {
		return models.Recipe{}, err
	}
	return recipe, nil
}

// DeleteRecipe implements [BackendAdapter]. It DELETEs /recipes/{id}.
func (h *httpBackendAdapter) DeleteRecipe(ctx context.Context, id string) error {
	_, err := h.Request(ctx, "/recipes/"+id, RequestOptions{Method: http.MethodDelete})
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}

// SearchRecipes implements [BackendAdapter]. It GETs /recipes/search with the
// non-zero criteria as query parameters; each tag becomes a repeated "tags"
// key.
func (h *httpBackendAdapter) SearchRecipes(ctx context.Context, query models.SearchQuery) (models.SearchResponse, error) {
	params := map[string]any{}
	if query.Query != "" {
		params["q"] = query.Query
	}
	if query.Cuisine != "" {
		params["cuisine"] = query.Cuisine
	}
	if len(query.Tags) > 0 {
		params["tags"] = query.Tags
	}
	if query.MaxCookTimeMinutes > 0 {
		params["maxCookTime"] = query.MaxCookTimeMinutes
	}
	if query.Limit > 0 {
		params["limit"] = query.Limit
	}
	if query.Offset > 0 {
		params["offset"] = query.Offset
	}

	resp, err := h.Request(ctx, "/recipes/search", RequestOptions{Params: params})
	if err != nil {
		return models.SearchResponse{}, fmt.Errorf("search recipes: %w", err)
	}

	var result models.SearchResponse
	if err = decodeJSON(resp, &result); err != nil {
		return models.SearchResponse{}, err
	}
	return result, nil
}

// RecipeImageUploadURL implements [BackendAdapter]. It POSTs the file
// metadata to POST /recipes/image-upload-url and returns the signed ticket.
func (h *httpBackendAdapter) RecipeImageUploadURL(ctx context.Context, req models.UploadTicketRequest) (models.UploadTicket, error) {
	return h.uploadTicket(ctx, "/recipes/image-upload-url", req)
}

// ProfileImageUploadURL implements [BackendAdapter]. It POSTs the file
// metadata to POST /users/profile-image-upload-url and returns the signed
// ticket.
func (h *httpBackendAdapter) ProfileImageUploadURL(ctx context.Context, req models.UploadTicketRequest) (models.UploadTicket, error) {
	return h.uploadTicket(ctx, "/users/profile-image-upload-url", req)
}

func (h *httpBackendAdapter) uploadTicket(ctx context.Context, endpoint string, req models.UploadTicketRequest) (models.UploadTicket, error) {
	resp, err := h.Request(ctx, endpoint, RequestOptions{
		Method: http.MethodPost,
		Body:   req,
	})
	if err != nil {
		return models.UploadTicket{}, fmt.Errorf("upload ticket: %w", err)
	}

	var ticket models.UploadTicket
	if err = decodeJSON(resp, &ticket); err != nil {
		return models.UploadTicket{}, err
	}
	return ticket, nil
}

// ConfirmProfileImage implements [BackendAdapter]. It POSTs the uploaded file
// name to POST /users/confirm-profile-image so the backend attaches the file
// to the profile.
func (h *httpBackendAdapter) ConfirmProfileImage(ctx context.Context, req models.ConfirmUploadRequest) (models.ConfirmUploadResponse, error) {
	resp, err := h.Request(ctx, "/users/confirm-profile-image", RequestOptions{
		Method: http.MethodPost,
		Body:   req,
	})
	if err != nil {
		return models.ConfirmUploadResponse{}, fmt.Errorf("confirm profile image: %w", err)
	}

	var result models.ConfirmUploadResponse
	if err = decodeJSON(resp, &result); err != nil {
		return models.ConfirmUploadResponse{}, err
	}
	return result, nil
}

// UploadToSignedURL implements [BackendAdapter]. It PUTs the raw bytes to the
// provider-issued signed URL through the raw client: the URL authorizes
// itself, so no token, cookie, or base URL applies.
func (h *httpBackendAdapter) UploadToSignedURL(ctx context.Context, uploadURL, contentType string, data []byte) error {
	resp, err := h.raw.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(data).
		Put(uploadURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

// DownloadImage implements [BackendAdapter]. It GETs a public file URL and
// returns the raw bytes.
func (h *httpBackendAdapter) DownloadImage(ctx context.Context, fileURL string) ([]byte, error) {
	resp, err := h.raw.R().
		SetContext(ctx).
		Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}
