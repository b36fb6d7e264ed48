package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/fiscal-console/internal/presentation/http/dto/response"
	"github.com/sangkips/fiscal-console/internal/presentation/http/middleware"
)

// GetRequestID extracts the request id set by the logger middleware
func GetRequestID(c *gin.Context) string {
	return c.GetString(middleware.RequestIDKey)
}

// parseID reads a positive integer path parameter. On failure a 400 has
// already been written.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}

// bindJSON decodes the body into v. On failure a 400 has already been written.
func bindJSON(c *gin.Context, v interface{}) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return false
	}
	return true
}
