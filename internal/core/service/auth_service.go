package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/floctet/studio-api/internal/core/domain"
	"github.com/floctet/studio-api/internal/core/ports"
)

const defaultSessionTTL = 24 * time.Hour

// AuthService implements registration, login and session identity on top of
// a UserRepository and a SessionStore.
type AuthService struct {
	users      ports.UserRepository
	sessions   ports.SessionStore
	sessionTTL time.Duration
	logger     zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, sessionTTL time.Duration, logger zerolog.Logger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}
	return &AuthService{users: users, sessions: sessions, sessionTTL: sessionTTL, logger: logger}
}

// Register creates a new user account. Uniqueness is checked username first,
// then email, both case-insensitively. The role is always forced to "user":
// administrators are seeded, never self-registered.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if _, err := s.users.FindByUsername(ctx, input.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		Name:         input.Name,
		Email:        input.Email,
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Login verifies credentials and establishes a new session. Every failure —
// unknown username or wrong password — collapses into the same generic
// ErrInvalidCredentials so the response cannot be used to probe accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, *domain.Session, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	session := &domain.Session{
		ID:        newSessionID(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, nil, err
	}

	s.logger.Info().Int("user_id", user.ID).Str("username", user.Username).Msg("user logged in")
	return user, session, nil
}

// Logout destroys the session. Always succeeds: logging out without a live
// session is not an error.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

// CurrentUser resolves an active session id to its user record.
func (s *AuthService) CurrentUser(ctx context.Context, sessionID string) (*domain.User, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, session.UserID)
}

// UpdateProfile applies a partial patch to the caller's own record. ID and
// role are not part of the patch surface and cannot change here.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int, patch domain.ProfilePatch) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.Gender != nil {
		user.Gender = *patch.Gender
	}

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("user_id", userID).Msg("profile updated")
	return updated, nil
}

// newSessionID returns 32 hex characters of crypto/rand entropy.
func newSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// fallback: derive from the clock, still unique enough per process
		return hex.EncodeToString([]byte(time.Now().UTC().Format(time.RFC3339Nano)))
	}
	return hex.EncodeToString(b)
}
