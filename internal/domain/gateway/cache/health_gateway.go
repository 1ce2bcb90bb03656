package cache

import "weather-api/internal/domain/model"

type HealthGateway interface {
	Health() model.ComponentHealthStatus
}
