package memory

import (
	"context"
	"sync"
	"time"

	"github.com/floctet/studio-api/internal/core/domain"
)

const defaultJanitorInterval = time.Hour

// SessionStore holds sessions in a map with lazy expiry on Get plus a
// background janitor that sweeps expired entries so abandoned sessions do
// not accumulate.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *SessionStore) Put(_ context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *session
	s.sessions[clone.ID] = &clone
	return nil
}

// Get returns ErrSessionNotFound for unknown ids and for sessions whose TTL
// has elapsed; expired entries are removed on the way out.
func (s *SessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if session.Expired(time.Now().UTC()) {
		delete(s.sessions, id)
		return nil, domain.ErrSessionNotFound
	}

	clone := *session
	return &clone, nil
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

// Len reports the number of stored sessions, expired ones included.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// StartJanitor sweeps expired sessions every interval until ctx is
// cancelled. Interval <= 0 uses the default of one hour.
func (s *SessionStore) StartJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultJanitorInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep(time.Now().UTC())
			}
		}
	}()
}

func (s *SessionStore) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, id)
		}
	}
}
