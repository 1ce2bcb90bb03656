package api

import (
	"weather-api/internal/domain/model/external"
)

// WeatherGateway defines the interface for the weather provider's read-only API
type WeatherGateway interface {
	// GetForecast gets the multi-day forecast for a city by name
	GetForecast(city string) (*external.ForecastResponse, error)

	// GetForecastByCoordinates gets the multi-day forecast for a coordinate pair
	GetForecastByCoordinates(lat float64, lon float64) (*external.ForecastResponse, error)

	// SearchCities searches the geocoding endpoint for city suggestions
	// limit: maximum number of suggestions to return
	SearchCities(query string, limit int) ([]external.GeoLocation, error)
}
