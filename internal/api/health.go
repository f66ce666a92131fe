package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SkipSnow/FindCare/internal/component"
)

// HealthCheck reports service health, the UI mount path, and the status of
// every registered component.
func (h *Handler) HealthCheck(c *gin.Context) {
	status := "ok"
	var components []component.Health

	if h.opts.Components != nil {
		components = h.opts.Components.HealthAll(c.Request.Context())
		for _, ch := range components {
			if ch.Status == component.StatusUnhealthy {
				status = "unhealthy"
				break
			}
			if ch.Status == component.StatusDegraded && status != "unhealthy" {
				status = "degraded"
			}
		}
	}

	httpStatus := http.StatusOK
	if status == "unhealthy" {
		httpStatus = http.StatusServiceUnavailable
	}

	body := gin.H{
		"status":  status,
		"ts":      utcISO(),
		"ui_path": h.opts.UIPath,
	}
	if len(components) > 0 {
		body["components"] = components
	}
	c.JSON(httpStatus, body)
}
