package service

import (
	"context"

	"github.com/floctet/studio-api/internal/core/domain"
	"github.com/floctet/studio-api/internal/core/ports"
)

// CatalogService exposes the seeded service catalog.
type CatalogService struct {
	repo ports.ServiceRepository
}

func NewCatalogService(repo ports.ServiceRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) Services(ctx context.Context) ([]*domain.Service, error) {
	return s.repo.List(ctx)
}
