package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/fiscal-console/internal/config"
	domainRepo "github.com/sangkips/fiscal-console/internal/domain/repository"
	"github.com/sangkips/fiscal-console/internal/presentation/http/handler"
	"github.com/sangkips/fiscal-console/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Sale       *handler.SaleHandler
	Storno     *handler.StornoHandler
	Document   *handler.DocumentHandler
	Job        *handler.JobHandler
	Printer    *handler.PrinterHandler
	Submission *handler.SubmissionHandler
	Health     *handler.HealthHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	RateLimiter     *middleware.ClientRateLimiter
	Recorder        middleware.RequestRecorder
	Metrics         http.Handler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))
	if deps.Recorder != nil {
		router.Use(middleware.Metrics(deps.Recorder))
	}

	router.GET("/health", h.Health.Health)
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics))
	}

	v1 := router.Group("/api/v1")
	if deps.RateLimiter != nil {
		v1.Use(deps.RateLimiter.Middleware())
	}

	// Submissions replay their first answer when retried with the same key
	submit := middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo})

	registerSaleRoutes(v1, h, submit)
	registerStornoRoutes(v1, h, submit)
	registerDocumentRoutes(v1, h, submit)
	registerJobRoutes(v1, h)

	v1.GET("/printers", h.Printer.List)
	v1.GET("/submissions", h.Submission.List)

	return router
}

// NewRateLimiter builds the per-client limiter from RATE_LIMIT_* settings.
func NewRateLimiter(cfg config.RateLimitConfig) *middleware.ClientRateLimiter {
	window := cfg.Duration
	if window <= 0 {
		window = 60
	}
	return middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.Requests) / float64(window),
		BurstSize:         cfg.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
}

func registerSaleRoutes(v1 *gin.RouterGroup, h *Handlers, submit gin.HandlerFunc) {
	sales := v1.Group("/sales")
	{
		sales.GET("/draft", h.Sale.Draft)
		sales.POST("/recompute", h.Sale.Recompute)
		sales.POST("/validate", h.Sale.Validate)
		sales.POST("/autofill", h.Sale.AutoFill)
		sales.POST("/preview", h.Sale.Preview)
		sales.POST("", submit, h.Sale.Submit)
	}
}

func registerStornoRoutes(v1 *gin.RouterGroup, h *Handlers, submit gin.HandlerFunc) {
	storno := v1.Group("/storno")
	{
		storno.POST("/validate", h.Storno.Validate)
		storno.POST("/preview", h.Storno.Preview)
		storno.POST("", submit, h.Storno.Submit)
	}
}

func registerDocumentRoutes(v1 *gin.RouterGroup, h *Handlers, submit gin.HandlerFunc) {
	v1.POST("/reports", submit, h.Document.Report)
	v1.POST("/cash", submit, h.Document.Cash)
	v1.POST("/text", submit, h.Document.Text)
	v1.POST("/receipts", submit, h.Document.Receipt)
}

func registerJobRoutes(v1 *gin.RouterGroup, h *Handlers) {
	jobs := v1.Group("/jobs")
	{
		jobs.GET("", h.Job.List)
		jobs.GET("/storno-candidates", h.Job.StornoCandidates)
		jobs.GET("/:id", h.Job.Get)
		jobs.GET("/:id/preview", h.Job.Preview)
		jobs.GET("/:id/storno-draft", h.Job.StornoDraft)
		jobs.POST("/:id/retry", h.Job.Retry)
		jobs.POST("/:id/cancel", h.Job.Cancel)
	}
}
