package api

import (
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/SkipSnow/FindCare/internal/server"
)

// The endpoints below are wireframe placeholders: fixed response shapes,
// no business logic. Malformed bodies are tolerated via defaulting.

// SessionSummary returns the not-yet-implemented session summary stub.
// Clients poll it on the advertised interval.
func (h *Handler) SessionSummary(c *gin.Context) {
	server.RespondOK(c, gin.H{
		"type":             "session-summary",
		"ts":               utcISO(),
		"summary":          "MVP: session summary not yet implemented (wireframe placeholder).",
		"interval_seconds": h.opts.SummaryIntervalSeconds,
	})
}

// ButtonManager echoes the received payload.
func (h *Handler) ButtonManager(c *gin.Context) {
	payload := map[string]any{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		payload = map[string]any{}
	}
	server.RespondOK(c, gin.H{
		"type":   "button-manager",
		"ts":     utcISO(),
		"echo":   payload,
		"status": "ok",
	})
}

// maxEchoedMessage bounds how many characters of a client message are
// echoed back. Truncation happens on rune boundaries so a multi-byte
// character is never split.
const maxEchoedMessage = 4000

type scrollableOutputRequest struct {
	Message string `json:"message"`
}

// ScrollableOutput returns a chat-like entry acknowledging the message.
func (h *Handler) ScrollableOutput(c *gin.Context) {
	var req scrollableOutputRequest
	_ = c.ShouldBindJSON(&req)

	msg := req.Message
	if utf8.RuneCountInString(msg) > maxEchoedMessage {
		msg = string([]rune(msg)[:maxEchoedMessage])
	}

	server.RespondOK(c, gin.H{
		"type": "scrollable-output",
		"ts":   utcISO(),
		"items": []gin.H{
			{"role": "assistant", "content": "(MVP) Received: " + msg},
		},
	})
}

// GraphicContent returns a small placeholder card payload.
func (h *Handler) GraphicContent(c *gin.Context) {
	server.RespondOK(c, gin.H{
		"type": "graphic-content",
		"ts":   utcISO(),
		"content": gin.H{
			"title": "Graphic Content (placeholder)",
			"body":  "Wireframe slot for clickable image regions / data-driven graphics.",
		},
	})
}
