package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/amarjeet-choudhary666/htwo-freelance-project/internal/api/http"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/api/http/handlers"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/auth"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/config"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/events"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/observability"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/persistence"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/repository"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/service"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/storage"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/worker"
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

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	assets, err := storage.NewS3Store(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Fatal("failed to init asset store", zap.Error(err))
	}

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	partnerRepo := repository.NewPartnerRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	serviceRepo := repository.NewServiceRepository(pool)
	submissionRepo := repository.NewSubmissionRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL(), cfg.Auth.RefreshTokenTTL())
	sessions := auth.NewCookieSessionManager(cfg.Auth.CookieSecure)
	adminGuard := auth.NewAdminGuard(tokens, sessions, userRepo)

	authService := service.NewAuthService(userRepo, tokens, cfg.Auth, logger)
	userService := service.NewUserService(userRepo, submissionRepo, logger)
	partnerService := service.NewPartnerService(partnerRepo, assets, redis.Client, dispatcher, logger)
	categoryService := service.NewCategoryService(categoryRepo, logger)
	catalogService := service.NewCatalogService(serviceRepo, logger)
	submissionService := service.NewSubmissionService(submissionRepo, dispatcher, logger)
	analyticsService := service.NewAnalyticsService(submissionRepo, userRepo, partnerRepo, serviceRepo, logger)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      handlers.NewHealthHandler(pg, redis),
		Auth:        handlers.NewAuthHandler(authService, sessions),
		Submissions: handlers.NewSubmissionsHandler(submissionService),
		Users:       handlers.NewUsersHandler(userService),
		Partners:    handlers.NewPartnersHandler(partnerService),
		Categories:  handlers.NewCategoriesHandler(categoryService),
		Services:    handlers.NewServicesHandler(catalogService),
		Admin:       handlers.NewAdminHandler(analyticsService),
		AdminGuard:  adminGuard,
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
