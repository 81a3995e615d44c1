package ports

import (
	"context"

	"github.com/floctet/studio-api/internal/core/domain"
)

// SubmitRequestInput carries a public service-request submission. Status is
// deliberately absent: callers cannot choose the initial state.
type SubmitRequestInput struct {
	Name        string
	Email       string
	Phone       string
	ServiceType string
	Description string
	MinBudget   string
	MaxBudget   string
}

// RequestService implements the service-request workflow.
type RequestService interface {
	Submit(ctx context.Context, input SubmitRequestInput) (*domain.ServiceRequest, error)
	List(ctx context.Context) ([]*domain.ServiceRequest, error)
	// SetStatus overwrites the status of an existing request and bumps its
	// UpdatedAt. Unknown statuses fail validation, unknown ids with
	// domain.ErrRequestNotFound.
	SetStatus(ctx context.Context, id int, status domain.RequestStatus) (*domain.ServiceRequest, error)
}
