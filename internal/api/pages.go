package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SkipSnow/FindCare/internal/util"
)

const pageStyle = `font-family:system-ui,Segoe UI,Arial;max-width:900px;margin:40px auto;line-height:1.5;`

// AboutPage serves the static About page.
func (h *Handler) AboutPage(c *gin.Context) {
	page := `<html><head><title>About FindCare</title></head>
<body style="` + pageStyle + `">
  <h2>About FindCare</h2>
  <p>FindCare is a healthcare AI assistant prototype focused on guiding users to ask good questions
  within the provider &amp; specialty domain, and returning results using available datasets.</p>
  <p><a href="/">Back to FindCare</a></p>
</body></html>`
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// SecretSausePage lists the tools and techniques behind the prototype.
func (h *Handler) SecretSausePage(c *gin.Context) {
	page := `<html><head><title>Secret Sause</title></head>
<body style="` + pageStyle + `">
  <h2>Secret Sause</h2>
  <p>This page lists the tools and techniques used to fuel this AI application (full disclosure).</p>
  <ul>
    <li>Gin for the API layer</li>
    <li>A served HTML shell for the UX harness</li>
    <li>Provider &amp; specialty datasets supplied by the project</li>
  </ul>
  <p><a href="/">Back to FindCare</a></p>
</body></html>`
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// PrivacyPage serves the privacy policy, sanitized before rendering.
func (h *Handler) PrivacyPage(c *gin.Context) {
	content := util.SanitizeHTMLAllowBasic(
		"<p><strong>Find Care Privacy Policy (MVP)</strong></p>" +
			"<p>FindCare does not store passwords. Identified PHI may be accessed only with explicit user action " +
			"and is not retained by default.</p>")
	page := `<html><head><title>Privacy Policy</title></head>
<body style="` + pageStyle + `">
  ` + content + `
  <p><a href="/">Back to FindCare</a></p>
</body></html>`
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}
