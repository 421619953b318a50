package routes

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/arenaplay/arena_play/internal/catalog"
	"github.com/arenaplay/arena_play/internal/config"
	"github.com/arenaplay/arena_play/internal/identity"
	"github.com/arenaplay/arena_play/internal/middleware"
	"github.com/arenaplay/arena_play/internal/notification"
	"github.com/arenaplay/arena_play/internal/otp"
	"github.com/arenaplay/arena_play/internal/sequence"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *mongo.Database
	Cache  *redis.Client
	Logger *slog.Logger

	// Notifier overrides the config-derived notifier when set. Tests use it.
	Notifier notification.Notifier
}

// Setup configures middlewares and all application routes. Outside of
// development both Mongo and Redis are mandatory; in development missing
// backends fall back to in-memory implementations.
func Setup(app *fiber.App, d Deps) error {
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("mongo is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	RegisterHealthRoutes(app, d)

	// Stores
	var (
		users       identity.Repository
		alloc       sequence.Allocator
		catalogRepo catalog.Repository
	)
	if d.DB != nil {
		users = identity.NewMongoRepository(d.DB)
		alloc = sequence.NewMongoAllocator(d.DB)
		catalogRepo = catalog.NewMongoRepository(d.DB)
	} else {
		users = identity.NewMemoryRepository()
		alloc = sequence.NewMemoryAllocator()
		mem := catalog.NewMemoryRepository()
		mem.SetTransactionHistory(catalog.SampleTransactionHistory())
		mem.SetGame(catalog.SampleGame())
		catalogRepo = mem
	}

	var codes otp.Store
	if d.Cache != nil {
		codes = otp.NewRedisStore(d.Cache)
	} else {
		codes = otp.NewMemoryStore()
	}

	notifier := d.Notifier
	if notifier == nil {
		if d.Cfg.SMTP.Host != "" {
			notifier = notification.NewSMTPNotifier(d.Cfg.SMTP.Host, d.Cfg.SMTP.Port, d.Cfg.SMTP.Username, d.Cfg.SMTP.Password, d.Cfg.SMTP.From)
		} else {
			notifier = notification.NewLoggerNotifier(d.Logger)
		}
	}

	// Services and handlers
	identitySvc := identity.NewService(users, alloc, codes, notifier, d.Logger, identity.Policy(d.Cfg.OTPPolicy), d.Cfg.OTPTTL)
	identityHandler := identity.NewHandler(identitySvc)
	catalogHandler := catalog.NewHandler(catalogRepo)

	api := app.Group("/api")
	RegisterIdentityRoutes(api, identityHandler, middleware.OTPRateLimit(d.Cache, d.Cfg.OTPSendLimit))
	RegisterCatalogRoutes(api, catalogHandler)

	return nil
}
