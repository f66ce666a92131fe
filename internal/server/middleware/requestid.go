package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/SkipSnow/FindCare/internal/logger"
)

// HeaderRequestID is the wire header carrying the request correlation ID.
const HeaderRequestID = "X-Request-Id"

// RequestID tags every request with a correlation ID: a caller-supplied
// header value is kept, otherwise a fresh UUID is assigned. The ID lives on
// the gin context under logger.FieldRequestID so log lines and handlers
// share one key, and is echoed back in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(logger.FieldRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RequestIDFrom returns the correlation ID RequestID stored on the context,
// or "" when the middleware has not run.
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(logger.FieldRequestID)
}
