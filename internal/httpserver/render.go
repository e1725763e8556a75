package httpserver

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tinytelemetry/seriesview/internal/model"
	"github.com/tinytelemetry/seriesview/internal/viewer"
)

//go:embed templates/*.html
var templatesFS embed.FS

// pageNames lists the page templates layered on top of base.html.
var pageNames = []string{"directory.html", "content.html", "chart.html"}

// PageData contains common data for all pages.
type PageData struct {
	Title    string
	SeriesID model.SeriesID
	Notice   string
	Error    string
	Data     any
}

func (d PageData) ContentLink() string { return viewer.ContentLink(d.SeriesID) }
func (d PageData) ChartLink() string   { return viewer.ChartLink(d.SeriesID) }

// renderer holds one parsed template set per page so that the "content"
// blocks of different pages never collide.
type renderer struct {
	pages map[string]*template.Template
}

func newRenderer() (*renderer, error) {
	base, err := template.ParseFS(templatesFS, "templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("httpserver: parse base template: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("httpserver: clone base template: %w", err)
		}
		if _, err := tmpl.ParseFS(templatesFS, "templates/"+name); err != nil {
			return nil, fmt.Errorf("httpserver: parse page template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &renderer{pages: pages}, nil
}

// render executes a page into a buffer first so a template failure never
// leaves a half-written response.
func (r *renderer) render(c *gin.Context, status int, name string, data PageData) {
	tmpl, ok := r.pages[name]
	if !ok {
		c.String(http.StatusInternalServerError, "unknown page %s", name)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		c.Error(err) //nolint:errcheck
		c.String(http.StatusInternalServerError, "failed to render page")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
