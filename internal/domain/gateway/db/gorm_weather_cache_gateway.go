package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/model"
	"weather-api/internal/domain/model/external"
)

type GormWeatherCacheGateway struct {
	DB *gorm.DB
}

var _ WeatherCacheGateway = (*GormWeatherCacheGateway)(nil)

func NewGormWeatherCacheGateway(db *gorm.DB) *GormWeatherCacheGateway {
	return &GormWeatherCacheGateway{DB: db}
}

// Put upserts the forecast payload under the given normalized key
func (gateway *GormWeatherCacheGateway) Put(key string, response *external.ForecastResponse) error {
	payload, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("failed to serialize forecast payload: %w", err)
	}

	row := entity.WeatherCache{
		CityName:    key,
		Payload:     string(payload),
		LastUpdated: time.Now().UnixMilli(),
	}

	result := gateway.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "city_name"}},
		UpdateAll: true,
	}).Create(&row)

	if result.Error != nil {
		return fmt.Errorf("failed to upsert cache entry for key '%s': %w", key, result.Error)
	}

	return nil
}

// Get returns the cached payload for the key, or model.ErrCacheMiss
func (gateway *GormWeatherCacheGateway) Get(key string) (*external.ForecastResponse, error) {
	var row entity.WeatherCache

	result := gateway.DB.First(&row, "city_name = ?", key)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read cache entry for key '%s': %w", key, result.Error)
	}

	var response external.ForecastResponse
	if err := json.Unmarshal([]byte(row.Payload), &response); err != nil {
		return nil, fmt.Errorf("failed to decode cache entry for key '%s': %w", key, err)
	}

	return &response, nil
}

// Keys enumerates all cached keys, ordered by key
func (gateway *GormWeatherCacheGateway) Keys() ([]string, error) {
	var keys []string

	result := gateway.DB.Model(&entity.WeatherCache{}).
		Order("city_name").
		Pluck("city_name", &keys)

	if result.Error != nil {
		return nil, fmt.Errorf("failed to enumerate cache keys: %w", result.Error)
	}

	return keys, nil
}
