package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/floctet/studio-api/internal/api/middleware"
	"github.com/floctet/studio-api/internal/core/domain"
)

// currentUser extracts the user resolved by the session middleware. The
// gates run first on protected routes, so a missing user here means the
// route was wired without its gate — fail closed.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.CtxUser).(*domain.User)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	return user, nil
}

// currentSessionID returns the resolved session id, empty when anonymous.
func currentSessionID(c echo.Context) string {
	sid, _ := c.Get(middleware.CtxSessionID).(string)
	return sid
}
