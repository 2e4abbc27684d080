// Package apiserver assembles the HTTP server for the JSON API.
package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/recipehub/recipehub/internal/infrastructure/config"
	"github.com/recipehub/recipehub/internal/infrastructure/http/handlers"
	"github.com/recipehub/recipehub/internal/infrastructure/http/middleware"
	"github.com/recipehub/recipehub/internal/ports/inbound"
	"github.com/recipehub/recipehub/pkg/healthcheck"
)

// Server is the HTTP server hosting the recipe API.
type Server struct {
	config      *config.Config
	logger      *zap.Logger
	httpServer  *http.Server
	router      chi.Router
	rateLimiter *middleware.RateLimiter
}

// NewServer wires the router, middleware, and handlers.
func NewServer(cfg *config.Config, logger *zap.Logger, recipeService inbound.RecipeService, db *gorm.DB) *Server {
	s := &Server{
		config: cfg,
		logger: logger.Named("api-server"),
	}

	s.router = s.buildRouter(recipeService, db)

	s.httpServer = &http.Server{
		Addr:           fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:        s.router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	return s
}

func (s *Server) buildRouter(recipeService inbound.RecipeService, db *gorm.DB) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	if s.config.Server.EnableCORS {
		r.Use(middleware.CORS())
	}
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.JSONOnly())

	if s.config.RateLimit.Enable {
		s.rateLimiter = middleware.NewRateLimiter(
			s.config.RateLimit.RequestsPerMin,
			s.config.RateLimit.BurstSize,
		)
		r.Use(s.rateLimiter.Handler)
	}

	health := healthcheck.New(s.config.App.Version, s.logger)
	if db != nil {
		health.Register("database", healthcheck.NewDatabaseChecker(db))
	}

	r.Get("/health", health.Handler())
	r.Get("/ready", health.ReadinessHandler())

	api := handlers.NewAPIHandlers(recipeService, s.logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", api.ListRecipes)
			r.Post("/", api.CreateRecipe)
			r.Get("/search", api.SearchRecipes)
			r.Get("/{id}", api.GetRecipe)
			r.Put("/{id}", api.UpdateRecipe)
			r.Delete("/{id}", api.DeleteRecipe)
			r.Get("/{id}/analysis", api.AnalyzeRecipe)
		})

		r.Route("/units", func(r chi.Router) {
			r.Get("/convert", api.ConvertUnits)
			r.Get("/suggestions", api.SuggestUnits)
		})

		r.Get("/ingredients/substitutes", api.GetSubstitutes)
	})

	return r
}

// Router exposes the assembled router, mainly for tests.
func (s *Server) Router() chi.Router {
	return s.router
}

// Start begins serving requests. It blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server",
		zap.String("addr", s.httpServer.Addr),
		zap.String("environment", s.config.App.Environment),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}

	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	return s.httpServer.Shutdown(ctx)
}
