package handler

import "github.com/floctet/studio-api/internal/core/domain"

// --- Request / Response types ---

// submitRequestRequest deliberately has no status field: the initial status
// is always pending and is not part of the public contract.
type submitRequestRequest struct {
	Name        string `json:"name"        validate:"required,min=2"`
	Email       string `json:"email"       validate:"required,email"`
	Phone       string `json:"phone,omitempty"`
	ServiceType string `json:"serviceType" validate:"required"`
	Description string `json:"description" validate:"required,min=10"`
	MinBudget   string `json:"minBudget,omitempty" validate:"omitempty,numeric"`
	MaxBudget   string `json:"maxBudget,omitempty" validate:"omitempty,numeric"`
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

type requestResponse struct {
	Message        string                 `json:"message"`
	ServiceRequest *domain.ServiceRequest `json:"serviceRequest"`
}
