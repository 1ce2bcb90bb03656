package api

import (
	"weather-api/internal/domain/model/external"
)

// LocationGateway defines the interface for the one-shot current-position lookup
type LocationGateway interface {
	// GetCurrentLocation resolves the caller's approximate coordinates.
	// Failure or an unresolvable position returns an error; callers fall
	// back to a named default city.
	GetCurrentLocation() (*external.GeoIPResponse, error)
}
