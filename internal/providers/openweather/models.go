package openweather

// ForecastAPIResponse is the 5-day/3-hourly forecast payload. Only the fields
// the aggregation consumes are mapped.
type ForecastAPIResponse struct {
	Cod  string          `json:"cod"`
	Cnt  int             `json:"cnt"`
	List []ForecastEntry `json:"list"`
	City struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
}

// ForecastEntry is one 3-hour forecast step. Temperatures are pointers so an
// entry that omits a value can be told apart from a zero-degree reading.
type ForecastEntry struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp     *float64 `json:"temp"`
		TempMin  *float64 `json:"temp_min"`
		TempMax  *float64 `json:"temp_max"`
		Humidity int      `json:"humidity"`
	} `json:"main"`
	Weather []WeatherCondition `json:"weather"`
	DtTxt   string             `json:"dt_txt"`
}

// WeatherCondition is one element of an entry's weather array.
type WeatherCondition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
