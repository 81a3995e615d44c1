package handler

import "github.com/floctet/studio-api/internal/core/domain"

// --- Request / Response types ---

type submitMessageRequest struct {
	Name    string `json:"name"    validate:"required,min=2"`
	Email   string `json:"email"   validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=2"`
	Message string `json:"message" validate:"required,min=10"`
}

type contactResponse struct {
	Message        string                 `json:"message"`
	ContactMessage *domain.ContactMessage `json:"contactMessage"`
}
