package ports

import (
	"context"

	"github.com/floctet/studio-api/internal/core/domain"
)

// SessionStore holds active sessions keyed by their opaque id. Backings must
// honour the session's fixed TTL: Get never returns an expired session.
type SessionStore interface {
	Put(ctx context.Context, s *domain.Session) error
	// Get returns domain.ErrSessionNotFound for unknown or expired ids.
	Get(ctx context.Context, id string) (*domain.Session, error)
	// Delete is idempotent: deleting an absent session is not an error.
	Delete(ctx context.Context, id string) error
}
