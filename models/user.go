package models

// UserView is the client-side projection of the authenticated user's profile
// and social counters. It is owned exclusively by the session service: the
// only writers are a successful session exchange and a successful profile
// update. All other packages read it through the session service accessor.
type UserView struct {
	// UID is the identity-provider account identifier shared with the
	// backend user record.
	UID string `json:"uid"`

	// Username is the unique handle chosen at signup. Used for profile
	// pages and for username-based login resolution.
	Username string `json:"username"`

	// Email is the address registered with the identity provider.
	Email string `json:"email"`

	// DisplayName is the public name shown next to recipes.
	DisplayName string `json:"displayName"`

	// FirstName and LastName are collected at signup and combined into
	// the initial DisplayName.
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`

	// ProfileImage is the public URL of the user's avatar, empty when the
	// user has not uploaded one.
	ProfileImage string `json:"profileImage,omitempty"`

	// Bio is the free-form profile description.
	Bio string `json:"bio,omitempty"`

	// FollowersCount, FollowingCount and RecipesCount are denormalized
	// counters maintained by the backend.
	FollowersCount int `json:"followersCount"`
	FollowingCount int `json:"followingCount"`
	RecipesCount   int `json:"recipesCount"`
}

// ProfileUpdate is a partial profile change. Nil fields are omitted from the
// request body and keep their current value on the server; the response is
// merged into the session's UserView the same way.
type ProfileUpdate struct {
	DisplayName  *string `json:"displayName,omitempty"`
	Username     *string `json:"username,omitempty"`
	FirstName    *string `json:"firstName,omitempty"`
	LastName     *string `json:"lastName,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
	Bio          *string `json:"bio,omitempty"`
}

// SignUpInput carries the fields collected by the registration form.
type SignUpInput struct {
	Email     string `json:"email"`
	Password  string `json:"-"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// DisplayName is derived from FirstName and LastName when empty.
	DisplayName string `json:"displayName"`
}
