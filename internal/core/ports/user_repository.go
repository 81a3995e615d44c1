package ports

import (
	"context"

	"github.com/floctet/studio-api/internal/core/domain"
)

// UserRepository defines persistence operations for user records.
// Username and email lookups are case-insensitive.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Update overwrites the stored record for user.ID.
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}
