package handler

import "github.com/floctet/studio-api/internal/core/domain"

// --- Request / Response types ---

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name"     validate:"required,min=2"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// profileRequest uses pointers so absent fields are left untouched by the
// patch while empty strings still count as explicit values.
type profileRequest struct {
	Username *string `json:"username,omitempty"`
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"phone,omitempty"`
	Gender   *string `json:"gender,omitempty"`
}

type authResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}
