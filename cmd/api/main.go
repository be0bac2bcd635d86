package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fund-portal/backend/internal/config"
	"github.com/fund-portal/backend/internal/db"
	apphttp "github.com/fund-portal/backend/internal/http"
	"github.com/fund-portal/backend/internal/http/handlers"
	"github.com/fund-portal/backend/internal/ratelimit"
	"github.com/fund-portal/backend/internal/repositories"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Rate limiting: shared Redis counter when configured, otherwise a
	// best-effort per-instance window.
	var limiter ratelimit.Store = ratelimit.NewMemoryStore()
	if cfg.RedisURL != "" {
		rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
		if err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer rdb.Close()
		limiter = ratelimit.NewRedisStore(rdb, log)
	}

	// Repositories
	userRepo := repositories.NewUserRepo(pool)
	portfolioRepo := repositories.NewPortfolioRepo(pool, cfg.DemoDataFallback)

	// Handlers
	userHandler := handlers.NewUserHandler(userRepo, log)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioRepo, log)

	// Fiber app
	app := apphttp.NewApp(cfg, log)
	apphttp.SetupRouter(app, cfg, log, limiter, userHandler, portfolioHandler)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
