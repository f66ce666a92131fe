package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/SkipSnow/FindCare/internal/logger"
)

// Recovery converts a handler panic into a 500 response. The panic value,
// stack, and request context go to the log; the client always sees the same
// opaque body.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			fields := map[string]interface{}{
				"panic":     fmt.Sprintf("%v", r),
				"stack":     string(debug.Stack()),
				"method":    c.Request.Method,
				"path":      c.Request.URL.Path,
				"client_ip": c.ClientIP(),
			}
			if id := RequestIDFrom(c); id != "" {
				fields[logger.FieldRequestID] = id
			}
			log.Error("Panic recovered", fields)

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}()
		c.Next()
	}
}
