package forecast

import (
	"weather-api/internal/domain/model/external"
)

// CurrentLocationKey is the cache key for coordinate-based lookups. A city
// cached by name and the same place cached by coordinates never share a key.
const CurrentLocationKey = "current_location"

type UseCase interface {
	// GetWeather fetches the forecast for a city, caching on success and
	// falling back to the cache when the remote fetch fails
	GetWeather(city string) (*external.ForecastResponse, error)

	// GetWeatherByLocation fetches the forecast for a coordinate pair with
	// the same cache-on-success, fallback-on-failure policy under the
	// current-location key
	GetWeatherByLocation(lat float64, lon float64) (*external.ForecastResponse, error)

	// SearchCities passes a suggestion query to the remote API with a fixed
	// result limit; no caching, failures propagate unmodified
	SearchCities(query string) ([]external.GeoLocation, error)

	// RefreshCachedCity re-fetches a cached city so its entry stays warm
	RefreshCachedCity(key string) error

	// EnqueueAllCachedCities enqueues every cached city key for refresh
	EnqueueAllCachedCities(requestID string) error
}
