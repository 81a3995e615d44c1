package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/floctet/studio-api/internal/core/domain"
)

// RequireAuth passes only when ResolveSession placed a user on the context.
// It runs before the handler and has no side effects.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := c.Get(CtxUser).(*domain.User); !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}
			return next(c)
		}
	}
}

// RequireAdmin passes only for an authenticated administrator. A logged-in
// non-admin gets 403, not 404: admin resources are not hidden from probing.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(CtxUser).(*domain.User)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}
			if !user.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
			}
			return next(c)
		}
	}
}
