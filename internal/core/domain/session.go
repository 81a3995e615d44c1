package domain

import "time"

// Session is the server-held proof of a successful login. The client only
// ever sees the opaque ID, wrapped in a signed cookie; the binding to a user
// lives here. A user may hold any number of concurrent sessions.
type Session struct {
	ID        string
	UserID    int
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session's fixed TTL has elapsed at now.
// The TTL is counted from creation and does not slide.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
