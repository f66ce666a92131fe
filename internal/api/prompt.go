package api

import (
	"github.com/gin-gonic/gin"

	"github.com/SkipSnow/FindCare/internal/provider"
	"github.com/SkipSnow/FindCare/internal/server"
)

// promptPageSizeCap bounds the first page regardless of the request limit.
const promptPageSizeCap = 25

// promptRequest carries the optional lookup criteria. Limit is a pointer
// so an absent limit (default 50) is distinguishable from an explicit 0
// (floored to 1).
type promptRequest struct {
	State     string `json:"state"`
	City      string `json:"city"`
	Specialty string `json:"specialty"`
	Insurance string `json:"insurance"`
	Limit     *int   `json:"limit"`
}

// promptResponse is the result envelope for the lookup endpoint.
type promptResponse struct {
	Type      string             `json:"type"`
	Timestamp string             `json:"ts"`
	Providers provider.TableView `json:"providers"`
	Notes     string             `json:"notes"`
}

// Prompt is the primary lookup endpoint: it filters the provider store by
// the supplied criteria and returns the first page as a provider table.
// Malformed bodies are tolerated and treated as empty criteria.
func (h *Handler) Prompt(c *gin.Context) {
	var req promptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req = promptRequest{}
	}

	limit := provider.DefaultLimit
	if req.Limit != nil {
		limit = max(1, *req.Limit)
	}

	criteria := provider.Criteria{
		State:     req.State,
		City:      req.City,
		Specialty: req.Specialty,
		Insurance: req.Insurance,
		Limit:     limit,
	}

	records := h.store.Filter(criteria)
	table := provider.BuildTable(records, 1, min(promptPageSizeCap, limit))

	h.log.Debug("Provider lookup served", map[string]interface{}{
		"matched": table.Total,
		"limit":   limit,
	})

	server.RespondOK(c, promptResponse{
		Type:      "prompt-result",
		Timestamp: utcISO(),
		Providers: table,
		Notes:     "MVP response from mock data. Replace the in-memory store with DB-backed lookup.",
	})
}
