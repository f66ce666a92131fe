package api

import (
	"time"

	"github.com/SkipSnow/FindCare/internal/component"
	"github.com/SkipSnow/FindCare/internal/logger"
	"github.com/SkipSnow/FindCare/internal/provider"
)

// Contact details returned by the header endpoint's contact link and
// shown in the UI shell footer.
const (
	ContactName  = "Skip Snow"
	ContactEmail = "skip.snow@gmail.com"
)

// Options configures the API handlers.
type Options struct {
	// UIPath is where the wireframe shell is mounted; "/" redirects here.
	UIPath string
	// SummaryIntervalSeconds is echoed by the session-summary placeholder
	// so clients know how often to poll.
	SummaryIntervalSeconds int
	// Components reports component health on /health. May be nil.
	Components *component.Registry
}

// Handler serves the FindCare API over the in-memory provider store.
type Handler struct {
	store *provider.Store
	opts  Options
	log   *logger.Logger
}

// NewHandler creates the API handler set.
func NewHandler(store *provider.Store, opts Options, log *logger.Logger) *Handler {
	if opts.UIPath == "" {
		opts.UIPath = "/ui"
	}
	if opts.SummaryIntervalSeconds <= 0 {
		opts.SummaryIntervalSeconds = 60
	}
	return &Handler{
		store: store,
		opts:  opts,
		log:   log.WithComponent("api"),
	}
}

// utcISO returns the current UTC time in RFC 3339 form, the timestamp
// format used across every response envelope.
func utcISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
