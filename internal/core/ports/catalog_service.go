package ports

import (
	"context"

	"github.com/floctet/studio-api/internal/core/domain"
)

// CatalogService exposes the seeded service catalog.
type CatalogService interface {
	Services(ctx context.Context) ([]*domain.Service, error)
}
