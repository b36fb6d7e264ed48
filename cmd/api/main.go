package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
	"github.com/sangkips/fiscal-console/internal/application/service"
	"github.com/sangkips/fiscal-console/internal/config"
	"github.com/sangkips/fiscal-console/internal/infrastructure/cache"
	"github.com/sangkips/fiscal-console/internal/infrastructure/database"
	"github.com/sangkips/fiscal-console/internal/infrastructure/metrics"
	"github.com/sangkips/fiscal-console/internal/infrastructure/printservice"
	"github.com/sangkips/fiscal-console/internal/infrastructure/repository"
	"github.com/sangkips/fiscal-console/internal/presentation/http/handler"
	"github.com/sangkips/fiscal-console/internal/presentation/http/routes"
)

var log = logging.MustGetLogger("main")

func main() {
	// Load configuration
	cfg := config.Load()
	config.InitLogger(cfg.Log.Level)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	submissionRepo := repository.NewSubmissionRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	go purgeIdempotencyKeys(idempotencyRepo.DeleteExpired, time.Hour)

	reg := metrics.NewRegistry()

	// Print service client behind the circuit breaker
	client := printservice.NewClient(cfg.PrintService, cfg.Breaker, nil)
	client.SetObserver(reg.ObservePrintService)

	// Preview cache; without Redis previews are rendered every time
	previews, redisClient := cache.Connect(context.Background(),
		cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.PreviewTTL)

	// Initialize services
	render := service.RenderSettings{
		Currency: cfg.Receipt.Currency,
		Location: cfg.Receipt.Location(),
	}
	composerService := service.NewComposerService(client, render, reg)
	jobService := service.NewJobService(client, submissionRepo, reg, cfg.Receipt.Location())
	previewService := service.NewPreviewService(client, previews, render, reg)

	checks := map[string]handler.HealthCheck{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if redisClient != nil {
		checks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}

	// Initialize handlers
	handlers := &routes.Handlers{
		Sale:       handler.NewSaleHandler(composerService, jobService),
		Storno:     handler.NewStornoHandler(composerService, jobService),
		Document:   handler.NewDocumentHandler(jobService),
		Job:        handler.NewJobHandler(jobService, previewService),
		Printer:    handler.NewPrinterHandler(jobService),
		Submission: handler.NewSubmissionHandler(jobService),
		Health:     handler.NewHealthHandler(cfg.App.Name, checks, client.BreakerState),
	}

	rateLimiter := routes.NewRateLimiter(cfg.RateLimit)
	defer rateLimiter.Close()

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		RateLimiter:     rateLimiter,
		Recorder:        reg,
		Metrics:         reg.Handler(),
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Infof("Starting %s server on port %s...", cfg.App.Name, port)
	log.Infof("Environment: %s, print service: %s", cfg.App.Env, cfg.PrintService.URL)

	srv := &http.Server{Addr: ":" + port, Handler: router}
	if err := srv.ListenAndServe(); err != nil {
		log.Errorf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// purgeIdempotencyKeys removes expired keys on every tick.
func purgeIdempotencyKeys(purge func(ctx context.Context, cutoff time.Time) (int64, error), every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for now := range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		n, err := purge(ctx, now)
		cancel()
		if err != nil {
			log.Warningf("Failed to purge idempotency keys: %v", err)
			continue
		}
		if n > 0 {
			log.Debugf("Purged %d expired idempotency keys", n)
		}
	}
}
