package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"

	_ "github.com/floctet/studio-api/docs"
	"github.com/floctet/studio-api/internal/api/handler"
	"github.com/floctet/studio-api/internal/api/middleware"
	"github.com/floctet/studio-api/internal/core/ports"
)

// Public form endpoints share one token bucket: 5 submissions per second
// sustained, bursts of 10.
const (
	formRateLimit = rate.Limit(5)
	formRateBurst = 10
)

// Deps carries everything the router needs. Mongo and Redis are nil when
// the in-memory backends are active; the readiness probe adapts.
type Deps struct {
	Auth         ports.AuthService
	Requests     ports.RequestService
	Contacts     ports.ContactService
	Catalog      ports.CatalogService
	CookieSecret string
	Mongo        *mongo.Database
	Redis        *redis.Client
	Logger       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("studio"))
	e.Use(middleware.ResolveSession(d.Auth, d.CookieSecret))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth, d.CookieSecret)
	requestHandler := handler.NewRequestHandler(d.Requests)
	contactHandler := handler.NewContactHandler(d.Contacts)
	catalogHandler := handler.NewCatalogHandler(d.Catalog)

	requireAuth := middleware.RequireAuth()
	requireAdmin := middleware.RequireAdmin()
	formLimit := middleware.RateLimit(formRateLimit, formRateBurst)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me, requireAuth)
	auth.PATCH("/profile", authHandler.UpdateProfile, requireAuth)

	// --- Service catalog ---
	e.GET("/api/services", catalogHandler.List)
	e.POST("/api/services/book", catalogHandler.Book, requireAuth)

	// --- Service requests ---
	e.POST("/api/service-requests", requestHandler.Submit, formLimit)
	e.GET("/api/service-requests", requestHandler.List, requireAdmin)
	e.PATCH("/api/service-requests/:id/status", requestHandler.SetStatus, requireAdmin)

	// --- Contact messages ---
	e.POST("/api/contact", contactHandler.Submit, formLimit)
	e.GET("/api/contact", contactHandler.List, requireAdmin)
	e.PATCH("/api/contact/:id/read", contactHandler.MarkRead, requireAdmin)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Mongo, d.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
