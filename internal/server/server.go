// Package server exposes the dashboard views over an HTTP JSON API.
package server

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/hidden-champions/county-atlas/internal/atlas"
	"github.com/hidden-champions/county-atlas/internal/config"
)

// Server serves the ranking, scatter, and map views from one shared
// read-only snapshot. A failure in one view never blocks the others.
type Server struct {
	snap    *atlas.Snapshot
	cfg     config.ServerConfig
	limiter *rate.Limiter
}

// New creates a server over a loaded snapshot.
func New(snap *atlas.Snapshot, cfg config.ServerConfig) *Server {
	limit := cfg.RateLimit
	if limit <= 0 {
		limit = 20
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = int(limit) * 2
	}
	return &Server{
		snap:    snap,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(limit), burst),
	}
}

// Router builds the chi route tree with CORS, request ID, logging, and rate
// limiting middleware.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	origins := s.cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(requestID)
	r.Use(requestLogger)
	r.Use(s.rateLimit)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/metrics", s.handleMetrics)
		r.Get("/rankings", s.handleRankings)
		r.Get("/scatter", s.handleScatter)
		r.Get("/map/{metric}", s.handleMap)
	})

	return r
}
