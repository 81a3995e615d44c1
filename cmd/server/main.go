package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	mongodrv "go.mongodb.org/mongo-driver/mongo"

	"github.com/floctet/studio-api/internal/api"
	"github.com/floctet/studio-api/internal/core/ports"
	"github.com/floctet/studio-api/internal/core/service"
	"github.com/floctet/studio-api/internal/infrastructure/config"
	mongostore "github.com/floctet/studio-api/internal/infrastructure/db/mongo"
	redisstore "github.com/floctet/studio-api/internal/infrastructure/db/redis"
	"github.com/floctet/studio-api/internal/infrastructure/notify"
	"github.com/floctet/studio-api/internal/infrastructure/queue"
	"github.com/floctet/studio-api/internal/infrastructure/store/memory"
	"github.com/floctet/studio-api/internal/infrastructure/store/seed"
	"github.com/floctet/studio-api/pkg/logger"
)

// @title        Studio API
// @version      1.0
// @description  Marketing site backend: service requests, contact messages, session auth.
// @BasePath     /
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Record store ---
	var (
		users    ports.UserRepository
		requests ports.RequestRepository
		contacts ports.ContactRepository
		catalog  ports.ServiceRepository
		mongoDB  *mongodrv.Database
	)
	switch cfg.StoreBackend {
	case "mongo":
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		mongoDB = db
		users = mongostore.NewUserRepository(db)
		requests = mongostore.NewRequestRepository(db)
		contacts = mongostore.NewContactRepository(db)
		catalog = mongostore.NewServiceRepository(db)
	case "memory":
		users = memory.NewUserRepository()
		requests = memory.NewRequestRepository()
		contacts = memory.NewContactRepository()
		catalog = memory.NewServiceRepository()
	default:
		log.Fatal().Str("backend", cfg.StoreBackend).Msg("unknown store backend")
	}

	if err := seed.Admin(ctx, users, cfg.Admin.Username, cfg.Admin.Password, cfg.Admin.Email); err != nil {
		log.Fatal().Err(err).Msg("admin seed failed")
	}
	if err := seed.Services(ctx, catalog); err != nil {
		log.Fatal().Err(err).Msg("catalog seed failed")
	}

	// --- Session store ---
	var (
		sessions    ports.SessionStore
		redisClient *goredis.Client
	)
	switch cfg.SessionBackend {
	case "redis":
		client, err := redisstore.Connect(ctx, redisstore.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() { _ = client.Close() }()

		redisClient = client
		sessions = redisstore.NewSessionStore(client)
	case "memory":
		store := memory.NewSessionStore()
		store.StartJanitor(ctx, time.Hour)
		sessions = store
	default:
		log.Fatal().Str("backend", cfg.SessionBackend).Msg("unknown session backend")
	}

	// --- Notification sink ---
	var sender ports.Notifier
	if cfg.SMTP.Host != "" {
		sender = notify.NewSMTPSender(notify.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			To:       cfg.SMTP.To,
		})
	} else {
		log.Warn().Msg("SMTP not configured, notifications are dropped")
		sender = notify.NewNoopSender(log)
	}

	dispatcher := queue.NewDispatcher(cfg.NotifyWorkers, sender, log)
	dispatcher.Start(ctx)

	// --- Services & router ---
	authService := service.NewAuthService(users, sessions, cfg.SessionTTL, log)
	requestService := service.NewRequestService(requests, dispatcher, log)
	contactService := service.NewContactService(contacts, dispatcher, log)
	catalogService := service.NewCatalogService(catalog)

	e := api.NewRouter(api.Deps{
		Auth:         authService,
		Requests:     requestService,
		Contacts:     contactService,
		Catalog:      catalogService,
		CookieSecret: cfg.SessionSecret,
		Mongo:        mongoDB,
		Redis:        redisClient,
		Logger:       log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("store", cfg.StoreBackend).Str("sessions", cfg.SessionBackend).Msg("server started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped")
}
