package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sangkips/fiscal-console/internal/config"
)

// requiredHeaders must always be accepted from the console frontend.
var requiredHeaders = []string{"Content-Type", "X-Request-ID", IdempotencyKeyHeader}

// CORSMiddleware creates a CORS middleware with the provided configuration
func CORSMiddleware(cfg *config.CORSConfig) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: cfg.AllowedMethods,
		AllowHeaders: cfg.AllowedHeaders,
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
			"X-Idempotency-Replayed",
			"X-RateLimit-Limit",
			"X-RateLimit-Remaining",
		},
		MaxAge: 12 * time.Hour,
	}

	// The operator console dev server
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	}
	if len(corsConfig.AllowMethods) == 0 {
		corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	}
	if len(corsConfig.AllowHeaders) == 0 {
		corsConfig.AllowHeaders = []string{"Accept", "Origin"}
	}
	corsConfig.AllowHeaders = withHeaders(corsConfig.AllowHeaders, requiredHeaders...)

	return cors.New(corsConfig)
}

func withHeaders(headers []string, required ...string) []string {
	out := append([]string(nil), headers...)
	for _, r := range required {
		found := false
		for _, h := range out {
			if h == r {
				found = true
				break
			}
		}
		if !found {
			out = append(out, r)
		}
	}
	return out
}
