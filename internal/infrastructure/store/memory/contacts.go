package memory

import (
	"context"
	"sync"

	"github.com/floctet/studio-api/internal/core/domain"
)

// ContactRepository stores contact messages keyed by id, listed in
// insertion order.
type ContactRepository struct {
	mu       sync.RWMutex
	messages map[int]*domain.ContactMessage
	order    []int
	nextID   int
}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{
		messages: make(map[int]*domain.ContactMessage),
		nextID:   1,
	}
}

func cloneMessage(m *domain.ContactMessage) *domain.ContactMessage {
	clone := *m
	return &clone
}

func (r *ContactRepository) Create(_ context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneMessage(msg)
	stored.ID = r.nextID
	r.nextID++

	r.messages[stored.ID] = stored
	r.order = append(r.order, stored.ID)

	return cloneMessage(stored), nil
}

func (r *ContactRepository) FindByID(_ context.Context, id int) (*domain.ContactMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	msg, ok := r.messages[id]
	if !ok {
		return nil, domain.ErrMessageNotFound
	}
	return cloneMessage(msg), nil
}

func (r *ContactRepository) List(_ context.Context) ([]*domain.ContactMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.ContactMessage, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneMessage(r.messages[id]))
	}
	return out, nil
}

func (r *ContactRepository) MarkRead(_ context.Context, id int) (*domain.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg, ok := r.messages[id]
	if !ok {
		return nil, domain.ErrMessageNotFound
	}

	msg.Read = true
	return cloneMessage(msg), nil
}
