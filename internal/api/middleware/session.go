package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/floctet/studio-api/internal/api/session"
	"github.com/floctet/studio-api/internal/core/ports"
)

// Context keys set by ResolveSession and read by the gates and handlers.
const (
	CtxUser      = "user"
	CtxSessionID = "session_id"
)

// ResolveSession resolves the session cookie into the calling user and
// stores both on the echo context. Resolution is best-effort: a missing,
// malformed or expired session leaves the caller anonymous and the request
// proceeds — enforcement is the gates' job, not this middleware's.
func ResolveSession(auth ports.AuthService, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			sid, err := session.Parse(secret, cookie.Value)
			if err != nil {
				return next(c)
			}

			user, err := auth.CurrentUser(c.Request().Context(), sid)
			if err != nil {
				return next(c)
			}

			c.Set(CtxUser, user)
			c.Set(CtxSessionID, sid)
			return next(c)
		}
	}
}
