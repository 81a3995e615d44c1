// Package memory implements the record store as in-process maps. It is the
// default backing and the one the test suite runs against; the mongo package
// provides the durable alternative behind the same ports.
//
// Each collection guards its map with its own mutex and assigns ids inside
// the write lock, so id assignment is atomic and mutations never interleave.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/floctet/studio-api/internal/core/domain"
)

// UserRepository stores users in a map keyed by id, with lowercased
// username and email indexes for O(1) case-insensitive lookup.
type UserRepository struct {
	mu         sync.RWMutex
	users      map[int]*domain.User
	byUsername map[string]int
	byEmail    map[string]int
	nextID     int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:      make(map[int]*domain.User),
		byUsername: make(map[string]int),
		byEmail:    make(map[string]int),
		nextID:     1,
	}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUsername[strings.ToLower(user.Username)]; exists {
		return nil, domain.ErrUsernameTaken
	}
	if _, exists := r.byEmail[strings.ToLower(user.Email)]; exists {
		return nil, domain.ErrEmailTaken
	}

	stored := cloneUser(user)
	stored.ID = r.nextID
	r.nextID++

	r.users[stored.ID] = stored
	r.byUsername[strings.ToLower(stored.Username)] = stored.ID
	r.byEmail[strings.ToLower(stored.Email)] = stored.ID

	return cloneUser(stored), nil
}

func (r *UserRepository) FindByID(_ context.Context, id int) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(user), nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[strings.ToLower(username)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(r.users[id]), nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(r.users[id]), nil
}

// Update overwrites the stored record. Uniqueness is enforced at
// registration only; the indexes are re-pointed without conflict checks.
func (r *UserRepository) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.users[user.ID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	delete(r.byUsername, strings.ToLower(current.Username))
	delete(r.byEmail, strings.ToLower(current.Email))

	stored := cloneUser(user)
	r.users[stored.ID] = stored
	r.byUsername[strings.ToLower(stored.Username)] = stored.ID
	r.byEmail[strings.ToLower(stored.Email)] = stored.ID

	return cloneUser(stored), nil
}
