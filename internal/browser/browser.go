// Package browser opens the FindCare UI in the user's default browser.
package browser

import (
	"github.com/pkg/browser"

	"github.com/SkipSnow/FindCare/internal/logger"
)

// OpenURL opens url in the default browser. Failures are logged, not
// fatal: the server is already up and the URL is printed for manual use.
func OpenURL(url string, log *logger.Logger) {
	if err := browser.OpenURL(url); err != nil {
		log.Warn("Could not open browser automatically", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
		return
	}
	log.Info("Opened browser", map[string]interface{}{"url": url})
}
