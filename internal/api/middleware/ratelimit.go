package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimit applies a shared token bucket to the wrapped routes. It guards
// the public form endpoints against scripted spam; authenticated traffic is
// not limited.
func RateLimit(limit rate.Limit, burst int) echo.MiddlewareFunc {
	limiter := rate.NewLimiter(limit, burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow() {
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests. Please try again later.")
			}
			return next(c)
		}
	}
}
