package ports

import (
	"context"

	"github.com/floctet/studio-api/internal/core/domain"
)

// RegisterInput carries a registration candidate from the transport layer.
// Role is absent on purpose: self-registration always yields a plain user.
type RegisterInput struct {
	Username string
	Password string
	Name     string
	Email    string
}

// AuthService implements registration, login and session identity.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies credentials and establishes a new session. Any
	// credential failure surfaces as domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*domain.User, *domain.Session, error)
	// Logout destroys the session; unknown ids succeed silently.
	Logout(ctx context.Context, sessionID string) error
	// CurrentUser resolves an active session to its user.
	CurrentUser(ctx context.Context, sessionID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int, patch domain.ProfilePatch) (*domain.User, error)
}
