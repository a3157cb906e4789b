package types

// TempRange holds the aggregated temperatures of one calendar day. Fields are
// pointers because an upstream entry may omit a numeric value; an absent field
// is omitted from the JSON output rather than rendered as zero.
type TempRange struct {
	Day *float64 `json:"day,omitempty"`
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// WeatherInfo carries the dominant weather description of a day.
type WeatherInfo struct {
	Description string `json:"description"`
}

// DailySummary is one calendar day collapsed from 3-hourly forecast entries.
// Dt is the representative Unix timestamp of the day (the noon entry when one
// exists). The JSON shape matches what the UI and admin consumers expect.
type DailySummary struct {
	Dt      int64         `json:"dt"`
	Temp    TempRange     `json:"temp"`
	Weather []WeatherInfo `json:"weather"`
}

// TourCityForecast is the per-city output of one pipeline run.
type TourCityForecast struct {
	CityKey string         `json:"cityKey"`
	Query   string         `json:"query"`
	Days    []DailySummary `json:"days"`
}
