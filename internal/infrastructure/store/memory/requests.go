package memory

import (
	"context"
	"sync"
	"time"

	"github.com/floctet/studio-api/internal/core/domain"
)

// RequestRepository stores service requests keyed by id. The order slice
// preserves insertion order for listing.
type RequestRepository struct {
	mu       sync.RWMutex
	requests map[int]*domain.ServiceRequest
	order    []int
	nextID   int
}

func NewRequestRepository() *RequestRepository {
	return &RequestRepository{
		requests: make(map[int]*domain.ServiceRequest),
		nextID:   1,
	}
}

func cloneRequest(r *domain.ServiceRequest) *domain.ServiceRequest {
	clone := *r
	return &clone
}

func (r *RequestRepository) Create(_ context.Context, req *domain.ServiceRequest) (*domain.ServiceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneRequest(req)
	stored.ID = r.nextID
	r.nextID++

	r.requests[stored.ID] = stored
	r.order = append(r.order, stored.ID)

	return cloneRequest(stored), nil
}

func (r *RequestRepository) FindByID(_ context.Context, id int) (*domain.ServiceRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	return cloneRequest(req), nil
}

func (r *RequestRepository) List(_ context.Context) ([]*domain.ServiceRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.ServiceRequest, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneRequest(r.requests[id]))
	}
	return out, nil
}

// UpdateStatus performs the read-modify-write under the write lock, so two
// concurrent calls on the same id serialize and exactly one final status wins.
func (r *RequestRepository) UpdateStatus(_ context.Context, id int, status domain.RequestStatus) (*domain.ServiceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}

	req.Status = status
	req.UpdatedAt = time.Now().UTC()

	return cloneRequest(req), nil
}
