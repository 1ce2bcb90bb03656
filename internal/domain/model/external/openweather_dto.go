package external

// ForecastResponse is the forecast payload returned by the weather provider.
// The sample list is ordered by timestamp and is never mutated after decoding.
type ForecastResponse struct {
	List []ForecastSample `json:"list"`
	City CityInfo         `json:"city"`
}

// ForecastSample is one timestamped forecast point (3-hour step).
type ForecastSample struct {
	Dt      int64       `json:"dt"`
	Main    MainMetrics `json:"main"`
	Weather []Condition `json:"weather"`
	Wind    Wind        `json:"wind"`
	Pop     float64     `json:"pop"`
	DtTxt   string      `json:"dt_txt"`
}

type MainMetrics struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
}

type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Wind struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
}

type CityInfo struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// GeoLocation is a city-search suggestion from the geocoding endpoint.
// Transient, never persisted.
type GeoLocation struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state,omitempty"`
}

// WeatherAPIErrorResponse is the weather provider's error body,
// e.g. {"cod":"404","message":"city not found"}.
type WeatherAPIErrorResponse struct {
	Cod     string `json:"cod"`
	Message string `json:"message"`
}
