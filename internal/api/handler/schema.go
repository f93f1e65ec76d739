package handler

import "github.com/beyond-platform/content-api/internal/core/domain"

// --- Request / Response types ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type createUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required"`
}

type updateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Role     string `json:"role"     validate:"required"`
	// Password is optional; when present the credential is replaced.
	Password string `json:"password"`
}

type roleRequest struct {
	Name string `json:"name" validate:"required,min=2,max=64"`
}

type createItemRequest struct {
	Title       string `json:"title" validate:"required"`
	URL         string `json:"url"   validate:"required,url"`
	Description string `json:"description"`
}

type updateItemRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

type likeResponse struct {
	Likes int64 `json:"likes"`
	Liked bool  `json:"liked"`
}
