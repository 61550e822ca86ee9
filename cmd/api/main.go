package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/johnquangdev/event-planner/docs"
	"github.com/johnquangdev/event-planner/internal/adapter/handler"
	"github.com/johnquangdev/event-planner/internal/adapter/repository"
	"github.com/johnquangdev/event-planner/internal/infrastructure/cache"
	"github.com/johnquangdev/event-planner/internal/infrastructure/database"
	"github.com/johnquangdev/event-planner/internal/infrastructure/mail"
	"github.com/johnquangdev/event-planner/internal/infrastructure/scheduler"
	"github.com/johnquangdev/event-planner/internal/infrastructure/storage"
	"github.com/johnquangdev/event-planner/internal/usecase/bulk"
	"github.com/johnquangdev/event-planner/internal/usecase/event"
	"github.com/johnquangdev/event-planner/internal/usecase/guest"
	"github.com/johnquangdev/event-planner/pkg/config"
	"github.com/johnquangdev/event-planner/pkg/jwt"
	pkgvalidator "github.com/johnquangdev/event-planner/pkg/validator"
)

// @title           Event Planner API
// @version         1.0
// @description     Guest list management with bulk actions for event organizers

// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = pkgvalidator.New()
	e.HTTPErrorHandler = handler.HTTPErrorHandler(logger)

	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("http.request",
				zap.String("request_id", v.RequestID),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)
			return nil
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Cookie"},
		AllowCredentials: true,
	}))

	// Initialize Database
	db, err := database.NewPostgresDB(cfg, logger)
	if err != nil {
		logger.Fatal("app.database.connect_failed", zap.Error(err))
	}
	defer database.CloseDB(db, logger)

	if cfg.Database.AutoMigrate {
		if cfg.IsProduction() {
			logger.Fatal("app.migrate.refused", zap.String("reason", "DB_AUTO_MIGRATE is enabled in production, run the cli migrate command instead"))
		}
		if err := database.AutoMigrate(db, cfg.Database.MigrationsDir, logger); err != nil {
			logger.Fatal("app.migrate.failed", zap.Error(err))
		}
	}

	// Snapshot store
	var snapshots bulk.Cache
	if cfg.Redis.Host != "" {
		redisStore, err := cache.NewRedisClient(cfg, logger)
		if err != nil {
			logger.Fatal("app.redis.connect_failed", zap.Error(err))
		}
		defer redisStore.Close()
		snapshots = redisStore
	} else {
		memStore := cache.NewMemoryStore()
		defer memStore.Close()
		snapshots = memStore
		logger.Warn("app.cache.memory", zap.String("reason", "REDIS_HOST not set, dialog snapshots are kept in process"))
	}

	// Object storage for exports
	var exports guest.ObjectStorage
	if cfg.Storage.Endpoint != "" {
		minioClient, err := storage.NewMinIOClient(context.Background(), &cfg.Storage)
		if err != nil {
			logger.Fatal("app.storage.connect_failed", zap.Error(err))
		}
		exports = minioClient
	} else {
		logger.Warn("app.storage.disabled", zap.String("reason", "STORAGE_ENDPOINT not set, guest exports are unavailable"))
	}

	mailer := mail.NewSMTPMailer(cfg.Mail, logger)

	// Repositories
	eventRepo := repository.NewEventRepository(db)
	guestRepo := repository.NewGuestRepository(db)

	// Use cases
	eventService := event.NewEventService(eventRepo)
	guestService := guest.NewGuestService(eventRepo, guestRepo, exports, cfg.Storage.URLExpiry, logger)
	bulkService := bulk.NewBulkService(eventRepo, guestRepo, snapshots, mailer, logger, bulk.Options{
		SnapshotTTL:    cfg.Bulk.SnapshotTTL,
		MaxSelection:   cfg.Bulk.MaxSelection,
		MailMaxElapsed: cfg.Bulk.MailMaxElapsed,
	})

	jwtManager := jwt.NewManager(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiry, cfg.JWT.Issuer)

	router := handler.NewRouter(
		cfg,
		jwtManager,
		eventService,
		handler.NewEventHandler(eventService, logger),
		handler.NewGuestHandler(guestService, logger),
		handler.NewBulkHandler(bulkService, cfg.Bulk.MaxSelection, logger),
	)
	router.Setup(e)

	// Background jobs
	var jobs *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		jobs = scheduler.NewScheduler(eventRepo, guestRepo, cfg.Scheduler, logger)
		if err := jobs.Start(); err != nil {
			logger.Fatal("app.scheduler.start_failed", zap.Error(err))
		}
	}

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		logger.Info("app.server.starting",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("app.server.failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("app.server.shutting_down")

	if jobs != nil {
		jobs.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("app.server.forced_shutdown", zap.Error(err))
		return
	}

	logger.Info("app.server.stopped")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
