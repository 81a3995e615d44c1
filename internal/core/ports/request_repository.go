package ports

import (
	"context"

	"github.com/floctet/studio-api/internal/core/domain"
)

// RequestRepository defines persistence operations for service requests.
type RequestRepository interface {
	Create(ctx context.Context, req *domain.ServiceRequest) (*domain.ServiceRequest, error)
	FindByID(ctx context.Context, id int) (*domain.ServiceRequest, error)
	// List returns every request in insertion order.
	List(ctx context.Context) ([]*domain.ServiceRequest, error)
	// UpdateStatus atomically overwrites the status and bumps UpdatedAt.
	UpdateStatus(ctx context.Context, id int, status domain.RequestStatus) (*domain.ServiceRequest, error)
}
