package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/floctet/studio-api/internal/core/domain"
	"github.com/floctet/studio-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users  map[int]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	stored := cloneUser(user)
	stored.ID = r.nextID
	r.nextID++
	r.users[stored.ID] = stored
	return cloneUser(stored), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

type stubSessionStore struct {
	sessions map[string]*domain.Session
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *stubSessionStore) Put(_ context.Context, session *domain.Session) error {
	clone := *session
	s.sessions[clone.ID] = &clone
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	session, ok := s.sessions[id]
	if !ok || session.Expired(time.Now().UTC()) {
		return nil, domain.ErrSessionNotFound
	}
	clone := *session
	return &clone, nil
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func newAuthService(repo ports.UserRepository, store ports.SessionStore) *AuthService {
	return NewAuthService(repo, store, time.Hour, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, newStubSessionStore())

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice",
		Password: "correcthorse",
		Name:     "Alice",
		Email:    "alice@example.com",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected role forced to %q, got %q", domain.RoleUser, user.Role)
	}
	if user.PasswordHash == "correcthorse" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correcthorse")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, newStubSessionStore())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob", Password: "password1", Name: "Bob", Email: "bob@example.com",
	}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	// Same username, different case, different email.
	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "BOB", Password: "password2", Name: "Bob II", Email: "bob2@example.com",
	})
	if err != domain.ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected 1 stored user, got %d", len(repo.users))
	}
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, newStubSessionStore())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "carol", Password: "password1", Name: "Carol", Email: "carol@example.com",
	}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "carol2", Password: "password2", Name: "Carol II", Email: "Carol@Example.com",
	})
	if err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected 1 stored user, got %d", len(repo.users))
	}
}

// ---------------------------------------------------------------------------
// Login / CurrentUser / Logout
// ---------------------------------------------------------------------------

func TestAuthService_Login_ThenCurrentUser(t *testing.T) {
	repo := newStubUserRepo()
	store := newStubSessionStore()
	svc := newAuthService(repo, store)

	registered, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "dave", Password: "goodpass1", Name: "Dave", Email: "dave@example.com",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, session, err := svc.Login(context.Background(), "dave", "goodpass1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("login returned wrong user: %d", user.ID)
	}
	if session.ID == "" {
		t.Fatalf("expected session id")
	}
	if session.UserID != registered.ID {
		t.Fatalf("session bound to wrong user: %d", session.UserID)
	}

	resolved, err := svc.CurrentUser(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if resolved.ID != registered.ID || resolved.Username != "dave" {
		t.Fatalf("unexpected resolved user: %+v", resolved)
	}
}

func TestAuthService_Login_CaseInsensitiveUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, newStubSessionStore())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "Erin", Password: "goodpass1", Name: "Erin", Email: "erin@example.com",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "erin", "goodpass1"); err != nil {
		t.Fatalf("case-insensitive login failed: %v", err)
	}
}

func TestAuthService_Login_GenericError(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, newStubSessionStore())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "frank", Password: "goodpass1", Name: "Frank", Email: "frank@example.com",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Wrong password against an existing user and a login against a
	// nonexistent user must be indistinguishable.
	_, _, errWrongPass := svc.Login(context.Background(), "frank", "badpass")
	_, _, errNoUser := svc.Login(context.Background(), "ghost", "whatever")

	if errWrongPass != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", errWrongPass)
	}
	if errNoUser != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", errNoUser)
	}
	if errWrongPass.Error() != errNoUser.Error() {
		t.Fatalf("error messages differ: %q vs %q", errWrongPass, errNoUser)
	}
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	store := newStubSessionStore()
	svc := newAuthService(newStubUserRepo(), store)

	if err := svc.Logout(context.Background(), "no-such-session"); err != nil {
		t.Fatalf("logout of unknown session failed: %v", err)
	}
	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("logout without session failed: %v", err)
	}
}

func TestAuthService_CurrentUser_ExpiredSession(t *testing.T) {
	repo := newStubUserRepo()
	store := newStubSessionStore()
	svc := newAuthService(repo, store)

	store.sessions["stale"] = &domain.Session{
		ID:        "stale",
		UserID:    1,
		CreatedAt: time.Now().Add(-2 * time.Hour),
		ExpiresAt: time.Now().Add(-time.Hour),
	}

	if _, err := svc.CurrentUser(context.Background(), "stale"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// UpdateProfile
// ---------------------------------------------------------------------------

func TestAuthService_UpdateProfile(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, newStubSessionStore())

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "grace", Password: "goodpass1", Name: "Grace", Email: "grace@example.com",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	name := "Grace Hopper"
	phone := "+1-555-0100"
	updated, err := svc.UpdateProfile(context.Background(), user.ID, domain.ProfilePatch{
		Name:  &name,
		Phone: &phone,
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if updated.Name != "Grace Hopper" || updated.Phone != "+1-555-0100" {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if updated.Email != "grace@example.com" {
		t.Fatalf("untouched field changed: %q", updated.Email)
	}
	if updated.Role != domain.RoleUser || updated.ID != user.ID {
		t.Fatalf("id or role changed: %+v", updated)
	}
}

func TestAuthService_UpdateProfile_NotFound(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), newStubSessionStore())

	name := "Nobody"
	if _, err := svc.UpdateProfile(context.Background(), 42, domain.ProfilePatch{Name: &name}); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
