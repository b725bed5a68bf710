package main

import (
	"log/slog"

	"agro-weather/internal/agro"
	"agro-weather/internal/config"
	"agro-weather/internal/observability"
	"agro-weather/internal/region"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router      *gin.Engine
	logger      *slog.Logger
	metrics     *observability.Metrics
	agroService agro.Service
	cfg         *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	metrics := observability.NewMetrics()

	reg, err := region.Parse(cfg.Region.Name)
	if err != nil {
		return nil, err
	}

	agroSvc, err := agro.NewService(cfg, reg, metrics, logger)
	if err != nil {
		return nil, err
	}

	return newApp(cfg, logger, metrics, agroSvc), nil
}

// newApp wires the router around already-built dependencies. Tests inject a
// mock service and unregistered metrics here.
func newApp(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics, agroSvc agro.Service) *App {
	// Set Gin mode from configuration
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	app := &App{
		router:      router,
		logger:      logger,
		metrics:     metrics,
		agroService: agroSvc,
		cfg:         cfg,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
