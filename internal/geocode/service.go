// Package geocode resolves place query strings to coordinates.
package geocode

import (
	"context"
	"log/slog"
	"strconv"

	"tour-weather/internal/config"
	"tour-weather/internal/providers/nominatim"
	"tour-weather/internal/types"
)

// SearchProvider defines the interface for forward-geocoding providers.
type SearchProvider interface {
	Search(ctx context.Context, query string) ([]nominatim.SearchAPIResult, error)
}

// Service resolves a query string to a single best-guess coordinate.
//
// Forward is fail-soft: a network error, a non-success status, a malformed
// response, or an empty result set all yield nil rather than an error, so one
// unresolvable city never aborts a whole pipeline run.
type Service interface {
	Forward(ctx context.Context, query string) *types.Coords
}

type geocodeService struct {
	provider SearchProvider
	logger   *slog.Logger
}

// NewService creates a geocode service backed by a real Nominatim client.
func NewService(cfg *config.Config, logger *slog.Logger) Service {
	client := nominatim.NewClient(cfg.App.GeocodeUserAgent, cfg.App.CountryCode)
	return NewServiceWithProvider(client, logger)
}

// NewServiceWithProvider creates a geocode service with a custom provider.
// This is useful for testing with mock providers.
func NewServiceWithProvider(provider SearchProvider, logger *slog.Logger) Service {
	return &geocodeService{
		provider: provider,
		logger:   logger.With("component", "geocode-service"),
	}
}

func (s *geocodeService) Forward(ctx context.Context, query string) *types.Coords {
	results, err := s.provider.Search(ctx, query)
	if err != nil {
		s.logger.Warn("forward geocode failed", "query", query, "error", err)
		return nil
	}
	if len(results) == 0 {
		s.logger.Debug("forward geocode returned no results", "query", query)
		return nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		s.logger.Warn("forward geocode returned malformed latitude", "query", query, "lat", results[0].Lat)
		return nil
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		s.logger.Warn("forward geocode returned malformed longitude", "query", query, "lon", results[0].Lon)
		return nil
	}

	coords := types.NewCoords(lat, lon)
	return &coords
}
