package models

// SessionExchangeRequest is the body of the session-establishment call. The
// backend verifies the ID token with the identity provider, sets the session
// cookie on the response, and returns the user's profile.
type SessionExchangeRequest struct {
	IDToken string `json:"idToken"`
}

// UsernameLookupRequest resolves a username to the email address registered
// with the identity provider, so that username logins can be authenticated.
type UsernameLookupRequest struct {
	Username string `json:"username"`
}

// UsernameLookupResponse is the resolution result.
type UsernameLookupResponse struct {
	Email string `json:"email"`
}

// SearchResponse is a page of recipe search results.
type SearchResponse struct {
	Recipes []Recipe `json:"recipes"`

	// Total is the number of matches across all pages.
	Total int `json:"total"`
}

// UploadTicket is a single-use signed upload authorization issued by the
// backend. The client PUTs the raw file bytes to UploadURL and afterwards
// refers to the file by FileURL.
type UploadTicket struct {
	// UploadURL is the provider-issued signed URL. It embeds its own
	// authorization; neither the bearer token nor the session cookie is
	// sent with the upload.
	UploadURL string `json:"uploadUrl"`

	// FileURL is the public URL the file will be served from once the
	// upload completes.
	FileURL string `json:"fileUrl"`

	// FileName is the backend-assigned object name, echoed back in the
	// upload confirmation call.
	FileName string `json:"fileName"`
}

// UploadTicketRequest describes the file an upload ticket is requested for.
type UploadTicketRequest struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size,omitempty"`
}

// ConfirmUploadRequest tells the backend a signed-URL upload finished, so it
// can attach the file to the user's profile.
type ConfirmUploadRequest struct {
	FileName string `json:"fileName"`
}

// ConfirmUploadResponse returns the final public URL of the confirmed file.
type ConfirmUploadResponse struct {
	ProfileImageURL string `json:"profileImageUrl"`
}

// APIError is the error envelope the backend uses for non-2xx responses.
// Either field may carry the human-readable message.
type APIError struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}
