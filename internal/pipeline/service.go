// Package pipeline drives the tour-forecast sequence: extract places from
// tour text, geocode each city, and aggregate its daily forecast.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"tour-weather/internal/config"
	"tour-weather/internal/extract"
	"tour-weather/internal/forecast"
	"tour-weather/internal/gazetteer"
	"tour-weather/internal/geocode"
	"tour-weather/internal/types"
)

// Extractor recognizes city keys in free-form text.
type Extractor interface {
	Extract(text string) extract.Result
}

// Input is one pipeline invocation. Name is the primary text field and
// Schedule the secondary; Multi allows more than one city per run.
type Input struct {
	Name     string
	Schedule string
	Multi    bool
	Lang     string
}

// Empty reports whether the input carries no text at all. An empty input
// never starts a run.
func (in Input) Empty() bool {
	return strings.TrimSpace(in.Name) == "" && strings.TrimSpace(in.Schedule) == ""
}

// Service runs the extraction-geocode-aggregate sequence for one input.
type Service struct {
	extractor  Extractor
	geocoder   geocode.Service
	forecaster forecast.Service
	maxCities  int
	logger     *slog.Logger
}

// NewService wires the pipeline with real components.
func NewService(cfg *config.Config, logger *slog.Logger) *Service {
	return NewServiceWithComponents(
		extract.New(),
		geocode.NewService(cfg, logger),
		forecast.NewService(cfg, logger),
		cfg.App.MaxCities,
		logger,
	)
}

// NewServiceWithComponents wires the pipeline with custom components. This is
// useful for testing with mocks.
func NewServiceWithComponents(
	extractor Extractor,
	geocoder geocode.Service,
	forecaster forecast.Service,
	maxCities int,
	logger *slog.Logger,
) *Service {
	return &Service{
		extractor:  extractor,
		geocoder:   geocoder,
		forecaster: forecaster,
		maxCities:  maxCities,
		logger:     logger.With("component", "pipeline"),
	}
}

// TourForecasts resolves the input's cities one at a time, in extraction
// order, and returns a forecast per city that geocoded successfully.
//
// The loop is deliberately sequential: it bounds outstanding requests to one
// and keeps result order equal to city order. Cancellation is checked after
// every network step; a geocode miss skips just that city, while a forecast
// failure aborts the whole run.
func (s *Service) TourForecasts(ctx context.Context, in Input) ([]types.TourCityForecast, error) {
	keys := s.selectCities(in)
	if len(keys) > s.maxCities {
		keys = keys[:s.maxCities]
	}

	results := make([]types.TourCityForecast, 0, len(keys))
	for _, key := range keys {
		query := gazetteer.QueryForCity(key)

		coords := s.geocoder.Forward(ctx, query)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if coords == nil {
			s.logger.Debug("skipping city without coordinates", "city", key, "query", query)
			continue
		}

		days, err := s.forecaster.DailyForecast(ctx, *coords, in.Lang)
		if cerr := ctx.Err(); cerr != nil {
			return nil, cerr
		}
		if err != nil {
			return nil, fmt.Errorf("forecast for %s: %w", key, err)
		}

		results = append(results, types.TourCityForecast{
			CityKey: string(key),
			Query:   query,
			Days:    days,
		})
	}

	return results, nil
}

// selectCities applies the city-selection policy: the primary field wins if
// it yields anything, then the secondary, then the fallback city. Without
// Multi only the first extracted key is used.
func (s *Service) selectCities(in Input) []types.CityKey {
	for _, text := range []string{in.Name, in.Schedule} {
		if strings.TrimSpace(text) == "" {
			continue
		}
		res := s.extractor.Extract(text)
		if len(res.All) == 0 {
			continue
		}
		if !in.Multi {
			return res.All[:1]
		}
		if len(res.All) > s.maxCities {
			return res.All[:s.maxCities]
		}
		return res.All
	}
	return []types.CityKey{gazetteer.FallbackCity}
}
