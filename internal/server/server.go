// Package server is the hotel web front: the public site and the admin
// dashboards, gated by the route guard and backed by the remote API.
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/hotelsuite/hotelsuite/internal/config"
	"github.com/hotelsuite/hotelsuite/internal/guard"
)

// Server represents the HTTP server
type Server struct {
	router     *gin.Engine
	config     *config.Config
	logger     zerolog.Logger
	httpClient *http.Client
	version    string
}

// Option configures a Server.
type Option func(*Server)

// WithHTTPClient sets the HTTP client used for calls to the remote API
func WithHTTPClient(httpClient *http.Client) Option {
	return func(s *Server) {
		s.httpClient = httpClient
	}
}

// New creates a new server instance
func New(cfg *config.Config, zlog zerolog.Logger, version string, opts ...Option) *Server {
	server := &Server{
		config:     cfg,
		logger:     zlog,
		httpClient: &http.Client{},
		version:    version,
	}
	for _, opt := range opts {
		opt(server)
	}

	// Setup router
	server.setupRouter()

	return server
}

// Handler returns the configured router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupRouter configures the Gin router with routes and middleware
func (s *Server) setupRouter() {
	gin.SetMode(gin.ReleaseMode)

	s.router = gin.New()

	// Add middleware
	s.router.Use(gin.Recovery())
	s.router.Use(requestIDMiddleware())
	s.router.Use(s.loggingMiddleware())

	// CORS middleware
	s.router.Use(cors.New(cors.Config{
		AllowOrigins:     s.config.Web.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", requestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Navigation gate for /admin/* and /auth/*
	s.router.Use(guard.Middleware(s.config.Web.SessionCookie, s.logger))

	// Health check endpoint
	s.router.GET("/health", s.healthCheck)

	// Public site
	s.router.GET("/", s.home)
	s.router.GET("/rooms", s.publicRooms)
	s.router.GET("/news", s.publicNews)
	s.router.GET("/gallery", s.publicGallery)
	s.router.POST("/booking", s.createBooking)
	s.router.GET(guard.RoutePending, s.pending)
	s.router.GET(guard.RouteUnauthorized, s.unauthorized)

	// Auth pages
	s.router.GET(guard.RouteSignIn, s.signInPage)
	s.router.POST(guard.RouteSignIn, s.signIn)

	// Admin dashboards
	admin := s.router.Group("/admin")
	{
		admin.GET("/dashboard", s.dashboard)
		admin.POST("/signout", s.signOut)
		admin.GET("/:resource", s.listResource)
		admin.DELETE("/:resource/:id", s.deleteResource)
	}
}

// @Router /health [get]
// @Success 200 {object} map[string]interface{}
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "online",
		"timestamp": time.Now().UTC(),
		"service":   "hotelsuite-web",
		"version":   s.version,
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := s.config.Web.Addr

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		s.logger.Error().Err(err).Msg("HTTP server error")
		return err
	case <-sigChan:
	}
	s.logger.Info().Msg("Received shutdown signal, shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error().Err(err).Msg("Error shutting down HTTP server")
		return err
	}

	s.logger.Info().Msg("Server shutdown complete")
	return nil
}
