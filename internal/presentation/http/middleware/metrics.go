package middleware

import (
	"github.com/gin-gonic/gin"
)

// RequestRecorder counts finished requests.
type RequestRecorder interface {
	RecordRequest(method, route string, code int)
}

// Metrics counts every request by its route template, so ids in paths do
// not explode the label set.
func Metrics(rec RequestRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		rec.RecordRequest(c.Request.Method, route, c.Writer.Status())
	}
}
