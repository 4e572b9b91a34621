package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"go.uber.org/zap"

	"github.com/ecoleta-discovery/internal/config"
	"github.com/ecoleta-discovery/internal/delivery/http/handler"
	"github.com/ecoleta-discovery/internal/delivery/http/middleware"
)

// Server - HTTP bridge the renderer polls and drives
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	discoveryHandler *handler.DiscoveryHandler
	detailHandler    *handler.DetailHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	discoveryHandler *handler.DiscoveryHandler,
	detailHandler *handler.DetailHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "Ecoleta Discovery",
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		IdleTimeout:           60 * time.Second,
		DisableStartupMessage: cfg.Bridge.Env == "production",
		ErrorHandler:          customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		discoveryHandler: discoveryHandler,
		detailHandler:    detailHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(""))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	api := s.app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Points screen
	discovery := api.Group("/discovery")
	discovery.Get("/", s.discoveryHandler.GetViewModel)
	discovery.Get("/markers", s.discoveryHandler.GetMarkers)
	discovery.Post("/categories/:id/toggle", s.discoveryHandler.ToggleCategory)
	discovery.Post("/retry/location", s.discoveryHandler.RetryLocation)
	discovery.Post("/retry/catalog", s.discoveryHandler.RetryCatalog)

	// Detail screen
	api.Get("/points/:id", s.detailHandler.GetPoint)
	api.Post("/points/:id/contact/whatsapp", s.detailHandler.OpenWhatsapp)
	api.Post("/points/:id/contact/email", s.detailHandler.ComposeMail)
}

// App exposes the fiber app for in-process tests
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Start() error {
	addr := s.config.GetBridgeAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
