// Package server wires handlers, pages and middleware into an http.Server.
package server

import (
	_ "embed"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"

	"github.com/passcheck/passcheck-go/internal/handler"
	"github.com/passcheck/passcheck-go/internal/middleware"
	"github.com/passcheck/passcheck-go/internal/web"
)

//go:embed specs/openapi.yaml
var openAPISpec []byte

const (
	specPath = "/specs/openapi.yaml"
	docsPath = "/docs/"
)

// Deps are the handlers the router dispatches to.
type Deps struct {
	Strength  *handler.StrengthHandler
	Generator *handler.GeneratorHandler
	Pages     *web.Pages
}

// Options control the optional parts of the router and the server timeouts.
type Options struct {
	Addr         string
	MetricsPath  string
	DocsEnabled  bool
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// NewRouter builds the chi router with every route and middleware mounted.
func NewRouter(deps Deps, opts Options) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recoverer(deps.Pages))
	r.Use(middleware.SecurityHeaders)

	r.NotFound(deps.Pages.NotFound)
	r.MethodNotAllowed(deps.Pages.MethodNotAllowed)

	r.Get("/", deps.Pages.Index)
	r.Handle("/static/*", http.StripPrefix("/static/", web.Static()))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/check", deps.Strength.HandleCheck)
	r.Get("/api/generate", deps.Generator.HandleGenerate)

	if opts.MetricsPath != "" {
		r.Handle(opts.MetricsPath, promhttp.Handler())
	}

	if opts.DocsEnabled {
		r.Get(specPath, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/yaml")
			_, _ = w.Write(openAPISpec)
		})
		r.Handle(docsPath+"*", v5emb.New(
			"Password Strength Checker",
			specPath,
			docsPath,
		))
	}

	return r
}

// New returns an http.Server serving NewRouter(deps, opts).
func New(deps Deps, opts Options) *http.Server {
	return &http.Server{
		Addr:         opts.Addr,
		Handler:      NewRouter(deps, opts),
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		IdleTimeout:  opts.IdleTimeout,
	}
}
