package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("http")

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// LoggerMiddleware assigns a request id and logs every request
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Generate request ID if not present
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		short := requestID
		if len(short) > 8 {
			short = short[:8]
		}
		status := c.Writer.Status()
		line := "[%s] %s | %d | %v | %s | %s"
		args := []interface{}{short, c.Request.Method, status, time.Since(start), c.ClientIP(), path}
		switch {
		case status >= 500:
			log.Errorf(line, args...)
		case status >= 400:
			log.Warningf(line, args...)
		default:
			log.Infof(line, args...)
		}

		for _, e := range c.Errors {
			log.Errorf("[%s] Error: %v", short, e.Err)
		}
	}
}
