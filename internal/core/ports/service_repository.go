package ports

import (
	"context"

	"github.com/floctet/studio-api/internal/core/domain"
)

// ServiceRepository holds the seeded service catalog.
type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
}
