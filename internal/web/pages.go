// Package web serves the HTML pages and static assets embedded in the binary.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

const title = "Password Strength Checker"

type errorPage struct {
	Status  int
	Title   string
	Message string
}

// Pages renders the index and error pages.
type Pages struct {
	tmpl *template.Template
}

// NewPages parses the embedded templates.
func NewPages() (*Pages, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Pages{tmpl: tmpl}, nil
}

// Index handles GET / requests.
func (p *Pages) Index(w http.ResponseWriter, r *http.Request) {
	p.render(w, http.StatusOK, "index.html", map[string]string{"Title": title})
}

// NotFound renders the 404 page.
func (p *Pages) NotFound(w http.ResponseWriter, r *http.Request) {
	p.renderError(w, http.StatusNotFound, "The page you are looking for does not exist.")
}

// MethodNotAllowed renders the 405 page.
func (p *Pages) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	p.renderError(w, http.StatusMethodNotAllowed, fmt.Sprintf("%s is not supported on this URL.", r.Method))
}

// ServerError renders the 500 page.
func (p *Pages) ServerError(w http.ResponseWriter, r *http.Request) {
	p.renderError(w, http.StatusInternalServerError, "Something went wrong on our side. Please try again later.")
}

func (p *Pages) renderError(w http.ResponseWriter, status int, msg string) {
	p.render(w, status, "error.html", errorPage{
		Status:  status,
		Title:   http.StatusText(status),
		Message: msg,
	})
}

// render executes into a buffer first so a template failure can still
// produce a clean status line.
func (p *Pages) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("rendering template", "template", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// Static serves the embedded assets; mount it under /static/ with the prefix stripped.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The directory is embedded at build time.
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
