// Package ui serves the FindCare wireframe shell: a single embedded HTML
// page that mirrors the API for same-origin demonstration. The page renders
// the provider table from the same TableView JSON the prompt endpoint
// returns.
package ui

import (
	_ "embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SkipSnow/FindCare/internal/provider"
)

//go:embed shell.html
var shellHTML string

var shellTemplate = template.Must(template.New("shell").Parse(shellHTML))

// shellData is what the shell template renders with.
type shellData struct {
	ContactEmail string
	States       []provider.State
	InitialTable template.JS
}

// Register mounts the shell page at path, rendered over the given store.
func Register(engine *gin.Engine, path, contactEmail string, store *provider.Store) error {
	initial, err := json.Marshal(provider.BuildTable(store.All(), 1, 25))
	if err != nil {
		return err
	}

	data := shellData{
		ContactEmail: contactEmail,
		States:       provider.USStates(),
		InitialTable: template.JS(initial),
	}

	engine.GET(path, func(c *gin.Context) {
		c.Status(http.StatusOK)
		c.Header("Content-Type", "text/html; charset=utf-8")
		if err := shellTemplate.Execute(c.Writer, data); err != nil {
			_ = c.Error(err)
		}
	})
	return nil
}
