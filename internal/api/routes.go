package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SkipSnow/FindCare/internal/config"
	"github.com/SkipSnow/FindCare/internal/server/endpoint"
)

// Register wires every API route onto the engine.
func (h *Handler) Register(engine *gin.Engine) {
	engine.GET("/", h.Root)
	engine.GET("/health", h.HealthCheck)
	engine.GET("/metrics", endpoint.Metrics())
	engine.GET("/info", endpoint.Info(config.ServiceName))

	engine.GET("/about", h.AboutPage)
	engine.GET("/secret-sause", h.SecretSausePage)
	engine.GET("/privacy", h.PrivacyPage)

	api := engine.Group("/api")
	{
		api.POST("/prompt", h.Prompt)
		api.POST("/header", h.Header)
		api.POST("/session-summary", h.SessionSummary)
		api.POST("/button-manager", h.ButtonManager)
		api.POST("/scrollable-output", h.ScrollableOutput)
		api.POST("/graphic-content", h.GraphicContent)
	}
}

// Root redirects straight to the first UI screen; there is no splash page.
func (h *Handler) Root(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, h.opts.UIPath)
}
