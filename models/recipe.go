package models

import "time"

// Recipe is a published recipe as returned by the backend.
type Recipe struct {
	// ID is the backend-assigned recipe identifier.
	ID string `json:"id"`

	// AuthorID is the UID of the publishing user; AuthorName is the
	// denormalized display name at publication time.
	AuthorID   string `json:"authorId"`
	AuthorName string `json:"authorName,omitempty"`

	// Title is the recipe headline. Required on creation.
	Title string `json:"title"`

	// Description is the free-form summary shown on recipe cards.
	Description string `json:"description,omitempty"`

	// Ingredients and Steps are ordered lists; blank entries are dropped
	// before submission.
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`

	// Servings is the number of portions the recipe yields.
	Servings int `json:"servings,omitempty"`

	// CookTimeMinutes is the total preparation plus cooking time.
	CookTimeMinutes int `json:"cookTimeMinutes,omitempty"`

	// Cuisine is a single free-form cuisine label (e.g. "Italian").
	Cuisine string `json:"cuisine,omitempty"`

	// Tags are free-form search labels.
	Tags []string `json:"tags,omitempty"`

	// ImageURL points at the uploaded cover photo, empty when none.
	ImageURL string `json:"imageUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RecipeInput is the payload for creating or replacing a recipe. The author
// fields are filled in server-side from the session.
type RecipeInput struct {
	Title           string   `json:"title"`
	Description     string   `json:"description,omitempty"`
	Ingredients     []string `json:"ingredients"`
	Steps           []string `json:"steps"`
	Servings        int      `json:"servings,omitempty"`
	CookTimeMinutes int      `json:"cookTimeMinutes,omitempty"`
	Cuisine         string   `json:"cuisine,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	ImageURL        string   `json:"imageUrl,omitempty"`
}

// SearchQuery holds recipe search criteria. Zero-valued optional fields are
// omitted from the query string; Tags produce one repeated query key per
// value.
type SearchQuery struct {
	// Query is the full-text term matched against title and description.
	Query string

	// Cuisine narrows results to a single cuisine label.
	Cuisine string

	// Tags requires every listed tag to be present.
	Tags []string

	// MaxCookTimeMinutes excludes recipes that take longer. Zero means no
	// limit.
	MaxCookTimeMinutes int

	// Limit and Offset page through results. Zero Limit uses the backend
	// default page size.
	Limit  int
	Offset int
}
