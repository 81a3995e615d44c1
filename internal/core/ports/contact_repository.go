package ports

import (
	"context"

	"github.com/floctet/studio-api/internal/core/domain"
)

// ContactRepository defines persistence operations for contact messages.
type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
	FindByID(ctx context.Context, id int) (*domain.ContactMessage, error)
	// List returns every message in insertion order.
	List(ctx context.Context) ([]*domain.ContactMessage, error)
	// MarkRead sets the read flag. Calling it on an already-read message is
	// a no-op, not an error.
	MarkRead(ctx context.Context, id int) (*domain.ContactMessage, error)
}
