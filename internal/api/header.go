package api

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/SkipSnow/FindCare/internal/errors"
	"github.com/SkipSnow/FindCare/internal/server"
)

// navTargets maps header links to their server-resolved pages.
var navTargets = map[string]string{
	"secret-sause":   "/secret-sause",
	"about":          "/about",
	"privacy-policy": "/privacy",
}

type headerRequest struct {
	Link string `json:"link"`
}

// Header resolves a header link to a navigation target or contact info.
// Unknown links are the one explicit client error on this surface.
func (h *Handler) Header(c *gin.Context) {
	var req headerRequest
	_ = c.ShouldBindJSON(&req)

	if req.Link == "contact" {
		server.RespondOK(c, gin.H{
			"type":        "contact-info",
			"contactName": ContactName,
			"email":       ContactEmail,
			"message":     "Use the mailto link in the header to contact FindCare.",
		})
		return
	}

	target, ok := navTargets[req.Link]
	if !ok {
		server.RespondWithError(c, apperrors.InvalidInput("Invalid link").WithDetail("link", req.Link))
		return
	}

	server.RespondOK(c, gin.H{
		"type": "nav",
		"href": target,
	})
}
