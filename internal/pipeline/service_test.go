package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"tour-weather/internal/extract"
	"tour-weather/internal/types"
)

// Mock components for testing

type mockExtractor struct {
	results map[string]extract.Result
}

func (m *mockExtractor) Extract(text string) extract.Result {
	return m.results[text]
}

type mockGeocoder struct {
	coords  map[string]*types.Coords
	queries []string
}

func (m *mockGeocoder) Forward(ctx context.Context, query string) *types.Coords {
	m.queries = append(m.queries, query)
	return m.coords[query]
}

type mockForecaster struct {
	days    []types.DailySummary
	errOn   int // 1-based call number that fails; 0 means never
	calls   int
	err     error
}

func (m *mockForecaster) DailyForecast(ctx context.Context, coords types.Coords, lang string) ([]types.DailySummary, error) {
	m.calls++
	if m.errOn != 0 && m.calls == m.errOn {
		if m.err != nil {
			return nil, m.err
		}
		return nil, errors.New("forecast failed")
	}
	return m.days, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func coordsFor(keys ...string) map[string]*types.Coords {
	m := make(map[string]*types.Coords)
	for i, q := range keys {
		c := types.NewCoords(float64(10+i), float64(100+i))
		m[q] = &c
	}
	return m
}

func newTestService(ex Extractor, geo *mockGeocoder, fc *mockForecaster) *Service {
	return NewServiceWithComponents(ex, geo, fc, 3, testLogger())
}

func TestTourForecasts_MultiCapsAtThree(t *testing.T) {
	ex := &mockExtractor{results: map[string]extract.Result{
		"five cities": {
			Primary: "da-nang",
			All:     []types.CityKey{"da-nang", "hoi-an", "hue", "ha-noi", "nha-trang"},
		},
	}}
	geo := &mockGeocoder{coords: coordsFor(
		"Da Nang, Vietnam",
		"Hoi An, Quang Nam, Vietnam",
		"Hue, Vietnam",
		"Hanoi, Vietnam",
		"Nha Trang, Khanh Hoa, Vietnam",
	)}
	fc := &mockForecaster{}

	results, err := newTestService(ex, geo, fc).TourForecasts(context.Background(), Input{Name: "five cities", Multi: true})
	if err != nil {
		t.Fatalf("TourForecasts() error = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	wantKeys := []string{"da-nang", "hoi-an", "hue"}
	for i, want := range wantKeys {
		if results[i].CityKey != want {
			t.Errorf("result %d: CityKey = %q, want %q (original key order)", i, results[i].CityKey, want)
		}
	}
}

func TestTourForecasts_SingleModeUsesFirstKeyOnly(t *testing.T) {
	ex := &mockExtractor{results: map[string]extract.Result{
		"two cities": {
			Primary: "hue",
			All:     []types.CityKey{"hue", "hoi-an"},
		},
	}}
	geo := &mockGeocoder{coords: coordsFor("Hue, Vietnam", "Hoi An, Quang Nam, Vietnam")}
	fc := &mockForecaster{}

	results, err := newTestService(ex, geo, fc).TourForecasts(context.Background(), Input{Name: "two cities"})
	if err != nil {
		t.Fatalf("TourForecasts() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].CityKey != "hue" {
		t.Errorf("CityKey = %q, want %q", results[0].CityKey, "hue")
	}
}

func TestTourForecasts_SecondaryFieldWhenPrimaryEmptyHanded(t *testing.T) {
	ex := &mockExtractor{results: map[string]extract.Result{
		"no places here": {},
		"schedule mentions Hội An": {
			Primary: "hoi-an",
			All:     []types.CityKey{"hoi-an"},
		},
	}}
	geo := &mockGeocoder{coords: coordsFor("Hoi An, Quang Nam, Vietnam")}
	fc := &mockForecaster{}

	in := Input{Name: "no places here", Schedule: "schedule mentions Hội An"}
	results, err := newTestService(ex, geo, fc).TourForecasts(context.Background(), in)
	if err != nil {
		t.Fatalf("TourForecasts() error = %v", err)
	}
	if len(results) != 1 || results[0].CityKey != "hoi-an" {
		t.Fatalf("results = %+v, want single hoi-an entry", results)
	}
}

func TestTourForecasts_FallbackCityWhenNothingMatches(t *testing.T) {
	ex := &mockExtractor{results: map[string]extract.Result{}}
	geo := &mockGeocoder{coords: coordsFor("Da Nang, Vietnam")}
	fc := &mockForecaster{}

	results, err := newTestService(ex, geo, fc).TourForecasts(context.Background(), Input{Name: "nothing matches"})
	if err != nil {
		t.Fatalf("TourForecasts() error = %v", err)
	}
	if len(results) != 1 || results[0].CityKey != "da-nang" {
		t.Fatalf("results = %+v, want fallback da-nang entry", results)
	}
	if results[0].Query != "Da Nang, Vietnam" {
		t.Errorf("Query = %q, want fallback query", results[0].Query)
	}
}

func TestTourForecasts_GeocodeMissSkipsCitySilently(t *testing.T) {
	ex := &mockExtractor{results: map[string]extract.Result{
		"three cities": {
			Primary: "da-nang",
			All:     []types.CityKey{"da-nang", "hoi-an", "hue"},
		},
	}}
	// hoi-an deliberately missing: its geocode returns nil.
	geo := &mockGeocoder{coords: coordsFor("Da Nang, Vietnam", "Hue, Vietnam")}
	fc := &mockForecaster{}

	results, err := newTestService(ex, geo, fc).TourForecasts(context.Background(), Input{Name: "three cities", Multi: true})
	if err != nil {
		t.Fatalf("TourForecasts() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].CityKey != "da-nang" || results[1].CityKey != "hue" {
		t.Errorf("results = [%s %s], want [da-nang hue]", results[0].CityKey, results[1].CityKey)
	}
}

func TestTourForecasts_ForecastFailureAbortsRun(t *testing.T) {
	ex := &mockExtractor{results: map[string]extract.Result{
		"three cities": {
			Primary: "da-nang",
			All:     []types.CityKey{"da-nang", "hoi-an", "hue"},
		},
	}}
	geo := &mockGeocoder{coords: coordsFor(
		"Da Nang, Vietnam",
		"Hoi An, Quang Nam, Vietnam",
		"Hue, Vietnam",
	)}
	fc := &mockForecaster{errOn: 2}

	results, err := newTestService(ex, geo, fc).TourForecasts(context.Background(), Input{Name: "three cities", Multi: true})
	if err == nil {
		t.Fatal("TourForecasts() error = nil, want error")
	}
	if results != nil {
		t.Errorf("results = %+v, want nil (no partial lists)", results)
	}
	if fc.calls != 2 {
		t.Errorf("forecaster calls = %d, want 2 (remaining cities skipped)", fc.calls)
	}
}

func TestTourForecasts_CancelledContextStopsRun(t *testing.T) {
	ex := &mockExtractor{results: map[string]extract.Result{
		"two cities": {
			Primary: "da-nang",
			All:     []types.CityKey{"da-nang", "hoi-an"},
		},
	}}
	geo := &mockGeocoder{coords: coordsFor("Da Nang, Vietnam", "Hoi An, Quang Nam, Vietnam")}
	fc := &mockForecaster{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := newTestService(ex, geo, fc).TourForecasts(ctx, Input{Name: "two cities", Multi: true})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if results != nil {
		t.Errorf("results = %+v, want nil", results)
	}
}
