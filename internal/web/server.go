package web

import (
	"embed"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/netscapy/netscapy/internal/engine"
	"github.com/netscapy/netscapy/internal/scanner"
	"github.com/netscapy/netscapy/internal/web/jobs"
)

//go:embed static/*
var staticFS embed.FS

// Options carries the scan parameters every web-initiated scan runs with.
type Options struct {
	OutputDir string
	Workers   int
	Timeout   time.Duration
}

// Server is the HTTP server for the Netscapy web application.
type Server struct {
	router   chi.Router
	addr     string
	registry *scanner.Registry
	manager  *jobs.Manager
}

// NewServer builds a new Server with middleware and routes configured.
func NewServer(addr string, eng *engine.Engine, opts Options) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		addr:     addr,
		registry: eng.Registry(),
		manager: jobs.NewManager(eng, jobs.Options{
			OutputDir: opts.OutputDir,
			Workers:   opts.Workers,
			Timeout:   opts.Timeout,
		}),
	}

	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.registerRoutes()

	return s
}

// Start begins listening on the configured address.
func (s *Server) Start() error {
	return http.ListenAndServe(s.addr, s.router)
}

// Router exposes the chi.Router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}
