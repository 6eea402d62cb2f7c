package page

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/yosssi/gohtml"

	"github.com/launchdash/launchdash/server/internal/dashboard"
)

//go:embed templates/index.html.tmpl
var templates embed.FS

var indexTmpl = template.Must(template.ParseFS(templates, "templates/index.html.tmpl"))

// Options tunes rendering.
type Options struct {
	// Pretty indents the rendered HTML.
	Pretty bool

	// WSPath and UpdatePath locate the reactive endpoints.
	WSPath     string
	UpdatePath string
}

// Handler serves the pre-rendered page at "/".
type Handler struct {
	body []byte
}

// view is the template input.
type view struct {
	Layout     dashboard.Layout
	LayoutJSON template.JS
	WSPath     string
	UpdatePath string
}

// New renders the page for layout.
func New(layout dashboard.Layout, opts Options) (*Handler, error) {
	if opts.WSPath == "" {
		opts.WSPath = "/ws/controls"
	}
	if opts.UpdatePath == "" {
		opts.UpdatePath = "/api/v1/update"
	}

	lj, err := json.Marshal(layout)
	if err != nil {
		return nil, fmt.Errorf("page: encode layout: %w", err)
	}

	var buf bytes.Buffer
	err = indexTmpl.Execute(&buf, view{
		Layout:     layout,
		LayoutJSON: template.JS(lj),
		WSPath:     opts.WSPath,
		UpdatePath: opts.UpdatePath,
	})
	if err != nil {
		return nil, fmt.Errorf("page: render: %w", err)
	}

	body := buf.Bytes()
	if opts.Pretty {
		body = gohtml.FormatBytes(body)
	}
	return &Handler{body: body}, nil
}

// ServeHTTP writes the page for GET and HEAD on "/"; other paths are 404.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	if r.Method == http.MethodHead {
		return
	}
	w.Write(h.body) //nolint:errcheck
}
