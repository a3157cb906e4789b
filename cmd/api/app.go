package main

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"tour-weather/internal/config"
	"tour-weather/internal/extract"
	"tour-weather/internal/forecast"
	"tour-weather/internal/geocode"
	"tour-weather/internal/pipeline"
)

// App encapsulates application dependencies
type App struct {
	router    *gin.Engine
	logger    *slog.Logger
	extractor *extract.Extractor
	pipeline  *pipeline.Service
	cfg       *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	// The extractor builds its matcher once at startup; the pipeline shares it.
	extractor := extract.New()

	app := &App{
		router:    router,
		logger:    logger,
		extractor: extractor,
		pipeline: pipeline.NewServiceWithComponents(
			extractor,
			geocode.NewService(cfg, logger),
			forecast.NewService(cfg, logger),
			cfg.App.MaxCities,
			logger,
		),
		cfg: cfg,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
