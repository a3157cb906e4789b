// Package forecast turns a coordinate into daily weather summaries.
package forecast

import (
	"context"
	"fmt"
	"log/slog"

	"tour-weather/internal/config"
	"tour-weather/internal/providers/openweather"
	"tour-weather/internal/types"
)

// ForecastProvider defines the interface for 3-hourly forecast providers.
type ForecastProvider interface {
	GetForecast(ctx context.Context, latitude, longitude float64, lang string) (*openweather.ForecastAPIResponse, error)
}

// Service fetches the hourly forecast for a coordinate and collapses it into
// one summary per calendar day.
type Service interface {
	DailyForecast(ctx context.Context, coords types.Coords, lang string) ([]types.DailySummary, error)
}

type forecastService struct {
	provider ForecastProvider
	maxDays  int
	logger   *slog.Logger
}

// NewService creates a forecast service backed by a real OpenWeather client.
func NewService(cfg *config.Config, logger *slog.Logger) Service {
	return NewServiceWithProvider(openweather.NewClient(cfg.App.OwmAPIKey), cfg.App.ForecastDays, logger)
}

// NewServiceWithProvider creates a forecast service with a custom provider.
// This is useful for testing with mock providers.
func NewServiceWithProvider(provider ForecastProvider, maxDays int, logger *slog.Logger) Service {
	return &forecastService{
		provider: provider,
		maxDays:  maxDays,
		logger:   logger.With("component", "forecast-service"),
	}
}

func (s *forecastService) DailyForecast(ctx context.Context, coords types.Coords, lang string) ([]types.DailySummary, error) {
	apiResponse, err := s.provider.GetForecast(ctx, coords.Latitude, coords.Longitude, lang)
	if err != nil {
		s.logger.Error("failed to get forecast from provider",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	return summarizeDays(apiResponse.List, s.maxDays), nil
}
