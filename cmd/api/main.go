package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/walks-service/internal/api/http/handlers"
	"github.com/spec-kit/walks-service/internal/auth"
	"github.com/spec-kit/walks-service/internal/config"
	"github.com/spec-kit/walks-service/internal/observability"
	"github.com/spec-kit/walks-service/internal/persistence"
	"github.com/spec-kit/walks-service/internal/repository"
	"github.com/spec-kit/walks-service/internal/service"
	"github.com/spec-kit/walks-service/internal/validation"

	httptransport "github.com/spec-kit/walks-service/internal/api/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	tokenIssuer, err := auth.NewTokenIssuer(cfg.Auth)
	if err != nil {
		logger.Fatal("invalid auth configuration", zap.Error(err))
	}

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	regionRepo := repository.NewRegionRepository(pool)
	walkRepo := repository.NewWalkRepository(pool)
	difficultyRepo := repository.NewWalkDifficultyRepository(pool)

	authService := service.NewAuthService(userRepo, tokenIssuer)
	bearerMiddleware := auth.NewBearerMiddleware(tokenIssuer)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:           handlers.NewHealthHandler(pg),
		Auth:             handlers.NewAuthHandler(authService),
		Regions:          handlers.NewRegionsHandler(regionRepo, validation.NewRegionValidator()),
		Walks:            handlers.NewWalksHandler(walkRepo, validation.NewWalkValidator(regionRepo, difficultyRepo)),
		WalkDifficulties: handlers.NewWalkDifficultiesHandler(difficultyRepo, validation.NewWalkDifficultyValidator()),
		Bearer:           bearerMiddleware,
		Metrics:          metrics,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
