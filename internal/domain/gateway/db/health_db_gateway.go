package db

import "weather-api/internal/domain/model"

type HealthDBGateway interface {
	Health() model.ComponentHealthStatus
}
