// Package server provides the HTTP server for the inventory API
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/pantrio/v1/internal/domain/pantry"
	"github.com/pantrio/v1/internal/infrastructure/config"
	"github.com/pantrio/v1/internal/infrastructure/http/handlers"
	"github.com/pantrio/v1/internal/infrastructure/http/middleware"
	"github.com/pantrio/v1/internal/ports/inbound"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
)

// Server represents the HTTP server
type Server struct {
	config        *config.Config
	logger        *zap.Logger
	router        *chi.Mux
	server        *http.Server
	pantryService inbound.PantryService
}

// NewServer creates a new HTTP server instance
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	pantryService inbound.PantryService,
) *Server {
	s := &Server{
		config:        cfg,
		logger:        logger,
		pantryService: pantryService,
	}

	s.router = s.setupRouter()

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           s.router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
	}

	return s
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	if s.config.Server.EnableCORS {
		r.Use(middleware.CORS(s.config.Server.AllowedOrigins))
	}

	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(chimiddleware.Compress(5))

	r.Use(middleware.RateLimit(s.config.RateLimit))
	r.Use(middleware.Metrics())

	// Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		s.setupAPIRoutes(r)
	})

	return r
}

// setupAPIRoutes configures REST API routes. Pantry and shopping share
// the same handler set; the mount point fixes the collection.
func (s *Server) setupAPIRoutes(r chi.Router) {
	h := handlers.NewAPIHandlers(s.pantryService, s.logger, s.config.App.Version)

	r.Route("/pantry", func(r chi.Router) {
		s.setupItemRoutes(r, h, pantry.KindPantry)
	})

	r.Route("/shopping", func(r chi.Router) {
		s.setupItemRoutes(r, h, pantry.KindShopping)
		r.Post("/items/{id}/toggle", h.ToggleItem)
	})

	// Health check
	r.Get("/health", h.HealthCheck)
}

func (s *Server) setupItemRoutes(r chi.Router, h *handlers.APIHandlers, kind pantry.ItemKind) {
	r.Route("/items", func(r chi.Router) {
		r.Get("/", h.ListItems(kind))
		r.Post("/", h.CreateItem(kind))
		r.Get("/{id}", h.GetItem)
		r.Put("/{id}", h.UpdateItem)
		r.Delete("/{id}", h.DeleteItem)
		r.Post("/{id}/quantity", h.AdjustQuantity)
	})

	r.Get("/stats", h.GetStats(kind))
}

// Handler exposes the configured router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		zap.String("address", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)

	if s.config.Server.EnableHTTP2 {
		if err := http2.ConfigureServer(s.server, nil); err != nil {
			s.logger.Error("Failed to configure HTTP/2", zap.Error(err))
		}
	}

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
