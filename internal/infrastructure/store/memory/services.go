package memory

import (
	"context"
	"sync"

	"github.com/floctet/studio-api/internal/core/domain"
)

// ServiceRepository holds the seeded service catalog.
type ServiceRepository struct {
	mu       sync.RWMutex
	services map[int]*domain.Service
	order    []int
	nextID   int
}

func NewServiceRepository() *ServiceRepository {
	return &ServiceRepository{
		services: make(map[int]*domain.Service),
		nextID:   1,
	}
}

func (r *ServiceRepository) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *svc
	clone.ID = r.nextID
	r.nextID++

	r.services[clone.ID] = &clone
	r.order = append(r.order, clone.ID)

	out := clone
	return &out, nil
}

func (r *ServiceRepository) List(_ context.Context) ([]*domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Service, 0, len(r.order))
	for _, id := range r.order {
		clone := *r.services[id]
		out = append(out, &clone)
	}
	return out, nil
}
