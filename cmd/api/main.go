package main

//go:generate go run github.com/swaggo/swag/cmd/swag@latest init -g main.go -d . -o ../../docs --parseDependency

import (
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"tour-weather/internal/config"

	_ "tour-weather/docs" // Import generated docs
)

// @title Tour Weather API
// @version 1.0.0
// @description Daily weather forecasts for the cities mentioned in tour descriptions
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger) // Set as default logger for the application

	// Create app
	app := NewApp(cfg, logger)

	// Start server
	logger.Info("starting server", "addr", cfg.GetServerAddr())
	if err := app.Run(cfg.GetServerAddr()); err != nil {
		logger.Error("server failed", "error", err)
		log.Fatal(err)
	}
}
