// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"economia/src/app/http/handler"
	"economia/src/app/http/response"
	"economia/src/app/http/validation"
	"economia/src/app/middleware"
	"economia/src/app/web"
	"economia/src/core/ports"
	"economia/src/core/usecase"
	"economia/src/infra/config"
)

// Dependencies are the adapters the server is wired to.
type Dependencies struct {
	Health     ports.Repository
	Articles   ports.ArticleRepository
	Users      ports.UserRepository
	Categories ports.CategoryRepository
	Hasher     ports.PasswordHasher
}

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server

	// Handlers
	healthHandler   *handler.HealthHandler
	articleHandler  *handler.ArticleHandler
	userHandler     *handler.UserHandler
	categoryHandler *handler.CategoryHandler
	pageHandler     *handler.PageHandler
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, deps Dependencies) (*Server, error) {
	// Set Gin mode based on log level
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := validation.Register(); err != nil {
		return nil, fmt.Errorf("failed to register validations: %w", err)
	}
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	// Create router without default middleware
	router := gin.New()
	router.SetHTMLTemplate(tmpl)

	// Create services
	healthService := usecase.NewHealthService(deps.Health, log)
	articleService := usecase.NewArticleService(deps.Articles, log)
	userService := usecase.NewUserService(deps.Users, deps.Hasher, log)
	categoryService := usecase.NewCategoryService(deps.Categories)

	s := &Server{
		cfg:             cfg,
		log:             log,
		router:          router,
		healthHandler:   handler.NewHealthHandler(healthService),
		articleHandler:  handler.NewArticleHandler(articleService),
		userHandler:     handler.NewUserHandler(userService),
		categoryHandler: handler.NewCategoryHandler(categoryService),
		pageHandler:     handler.NewPageHandler(articleService),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s, nil
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Order matters: Recovery should be first to catch all panics
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.Logging(s.log))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)

	// Pages
	s.router.GET("/", s.pageHandler.Home)
	s.router.GET("/artigos/:slug", s.pageHandler.Article)

	api := s.router.Group("/api")
	{
		api.GET("/artigos", s.articleHandler.List)
		api.POST("/artigos", s.articleHandler.Create)
		api.GET("/artigos/:slug", s.articleHandler.Get)

		api.GET("/usuarios", s.userHandler.List)
		api.POST("/usuarios", s.userHandler.Create)
		api.DELETE("/usuarios/:id", s.userHandler.Deactivate)

		api.GET("/categorias", s.categoryHandler.List)
	}

	s.router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Recurso não encontrado", middleware.GetRequestID(c))
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run starts the HTTP server and blocks until ctx is done, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.log.Info("starting HTTP server",
			"addr", s.cfg.Server.Addr(),
		)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.log.Info("received shutdown signal", "cause", context.Cause(ctx))
	case err := <-errCh:
		return err
	}

	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}
