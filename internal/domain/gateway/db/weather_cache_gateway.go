package db

import (
	"weather-api/internal/domain/model/external"
)

// WeatherCacheGateway defines the contract for the keyed forecast cache.
// One entry per key; a put with an existing key fully replaces the prior
// entry. There is no expiry and no eviction.
type WeatherCacheGateway interface {
	// Put upserts the forecast payload under the given normalized key
	Put(key string, response *external.ForecastResponse) error

	// Get returns the cached payload for the key, or model.ErrCacheMiss
	// when no entry exists. It never synthesizes data.
	Get(key string) (*external.ForecastResponse, error)

	// Keys enumerates all cached keys, ordered by key
	Keys() ([]string, error)
}
