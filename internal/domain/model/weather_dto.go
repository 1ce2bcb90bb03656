package model

import "weather-api/internal/domain/model/external"

// IconCategory is the closed set of display categories icon codes map to.
type IconCategory string

const (
	IconClearDay     IconCategory = "clear-day"
	IconClearNight   IconCategory = "clear-night"
	IconPartlyCloudy IconCategory = "partly-cloudy"
	IconOvercast     IconCategory = "overcast"
	IconRain         IconCategory = "rain"
	IconThunderstorm IconCategory = "thunderstorm"
	IconSnow         IconCategory = "snow"
)

// ForecastItem is one derived per-day forecast row.
type ForecastItem struct {
	Icon        IconCategory `json:"icon"`
	DayOfWeek   string       `json:"dayOfWeek"`
	Date        string       `json:"date"`
	Temperature string       `json:"temperature"`
}

// MetricItem is one derived per-metric row from the most recent sample.
type MetricItem struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// WeatherSnapshot is an immutable copy of the weather state. All derived
// fields are committed together with the payload that produced them; Error
// and Weather may coexist so stale data stays visible under an error notice.
type WeatherSnapshot struct {
	IsLoading         bool                       `json:"isLoading"`
	Weather           *external.ForecastResponse `json:"weather,omitempty"`
	ForecastItems     []ForecastItem             `json:"forecastItems"`
	MetricItems       []MetricItem               `json:"metricItems"`
	SearchSuggestions []external.GeoLocation     `json:"searchSuggestions"`
	Error             string                     `json:"error,omitempty"`
}
