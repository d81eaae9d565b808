package router

import (
	"context"
	"fmt"

	healthsvc "mudarabah-backend/internal/application/health"
	ledgersvc "mudarabah-backend/internal/application/ledger"
	poolsvc "mudarabah-backend/internal/application/pools"
	rollbacksvc "mudarabah-backend/internal/application/rollback"
	"mudarabah-backend/internal/config"
	"mudarabah-backend/internal/infrastructure/database"
	"mudarabah-backend/internal/infrastructure/seed"
	"mudarabah-backend/internal/infrastructure/store"
	healthhandler "mudarabah-backend/internal/interfaces/handlers/health"
	invhandler "mudarabah-backend/internal/interfaces/handlers/investments"
	poolhandler "mudarabah-backend/internal/interfaces/handlers/pools"
	userhandler "mudarabah-backend/internal/interfaces/handlers/users"
	"mudarabah-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CreateApp opens the store (in memory unless DATABASE_URL is set), seeds
// it when asked, connects Redis when REDIS_URL is set and wires every route.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, err
	}
	st := store.New(db)
	if cfg.SeedDemoData {
		if err := seed.Run(context.Background(), st, seed.Config{Username: cfg.DemoUsername, Password: cfg.DemoPassword}); err != nil {
			return nil, nil, nil, fmt.Errorf("seed: %w", err)
		}
	}

	rdb, err := newRedis(cfg.RedisURL)
	if err != nil {
		return nil, nil, nil, err
	}

	app := New(cfg, st, rdb)
	return app, db, rdb, nil
}

// New builds the Fiber app over an already opened store. rdb may be nil.
func New(cfg *config.Config, st *store.Store, rdb *redis.Client) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
	}))
	app.Use(middleware.HealthMarker(rdb))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	hh := &healthhandler.Handlers{
		Rdb:            rdb,
		DB:             &database.Pinger{DB: st.DB()},
		Ledger:         st,
		HealthAdminKey: cfg.HealthAdminKey,
	}
	app.Get("/health/json", hh.JSON)
	app.Get("/health/errors", hh.Errors)
	app.Get("/health/reset", hh.Reset)

	ledger := &ledgersvc.Service{Store: st}
	rollback := &rollbacksvc.Service{Store: st}
	pools := &poolsvc.Service{Store: st}

	api := app.Group("/api")

	ph := &poolhandler.Handlers{Service: pools}
	api.Get("/pools", ph.GetPools)
	api.Get("/pools/:id", ph.GetPool)
	api.Get("/pools/:id/projection", ph.GetProjection)
	api.Get("/pools/:id/events", ph.GetEvents)

	ih := &invhandler.Handlers{Service: ledger}
	api.Post("/investments", ih.CreateInvestment)

	uh := &userhandler.Handlers{Ledger: ledger, Rollback: rollback, Pools: pools}
	api.Get("/users/:userId/investments", uh.GetInvestments)
	api.Get("/users/:userId/summary", uh.GetSummary)
	api.Post("/users/:userId/reset", uh.Reset)

	return app
}

var _ healthsvc.Ledger = (*store.Store)(nil)

func newRedis(url string) (*redis.Client, error) {
	if url == "" {
		log.Info().Msg("REDIS_URL not set; request stats disabled")
		return nil, nil
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	return redis.NewClient(opts), nil
}
