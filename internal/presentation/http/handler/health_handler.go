package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck probes one dependency.
type HealthCheck func(ctx context.Context) error

// HealthHandler reports the state of the console and its dependencies.
type HealthHandler struct {
	service string
	checks  map[string]HealthCheck
	breaker func() string
}

// NewHealthHandler creates a new health handler. breaker may be nil.
func NewHealthHandler(service string, checks map[string]HealthCheck, breaker func() string) *HealthHandler {
	return &HealthHandler{service: service, checks: checks, breaker: breaker}
}

// Health answers 200 when every check passes and 503 otherwise. An open
// print service breaker is reported but does not fail the check.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := "ok"
	code := http.StatusOK
	deps := gin.H{}
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			deps[name] = err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
			continue
		}
		deps[name] = "ok"
	}

	body := gin.H{
		"status":       status,
		"service":      h.service,
		"dependencies": deps,
	}
	if h.breaker != nil {
		body["print_service"] = h.breaker()
	}
	c.JSON(code, body)
}
