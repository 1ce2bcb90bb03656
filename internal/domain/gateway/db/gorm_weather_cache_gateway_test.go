package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/model"
	"weather-api/internal/domain/model/external"
)

func newTestGateway(t *testing.T) *GormWeatherCacheGateway {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(&entity.WeatherCache{}))

	return NewGormWeatherCacheGateway(database)
}

func forecastFor(city string, temp float64) *external.ForecastResponse {
	return &external.ForecastResponse{
		List: []external.ForecastSample{
			{
				Dt:      1735732800,
				Main:    external.MainMetrics{Temp: temp, FeelsLike: temp - 1.1, Humidity: 70},
				Weather: []external.Condition{{ID: 800, Main: "Clear", Description: "clear sky", Icon: "01d"}},
				Wind:    external.Wind{Speed: 4.2, Deg: 180},
			},
		},
		City: external.CityInfo{Name: city, Country: "GB"},
	}
}

func TestPutThenGetRoundTripsPayload(t *testing.T) {
	gateway := newTestGateway(t)
	stored := forecastFor("London", 12.4)

	require.NoError(t, gateway.Put("london", stored))

	loaded, err := gateway.Get("london")

	require.NoError(t, err)
	assert.Equal(t, stored, loaded)
}

func TestSecondPutFullyReplacesEntry(t *testing.T) {
	gateway := newTestGateway(t)

	require.NoError(t, gateway.Put("london", forecastFor("London", 12.4)))
	replacement := forecastFor("London", 3.7)
	require.NoError(t, gateway.Put("london", replacement))

	loaded, err := gateway.Get("london")

	require.NoError(t, err)
	assert.Equal(t, replacement, loaded)
	require.Len(t, loaded.List, 1)
	assert.Equal(t, 3.7, loaded.List[0].Main.Temp)

	keys, err := gateway.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"london"}, keys)
}

func TestGetUnknownKeyReturnsCacheMiss(t *testing.T) {
	gateway := newTestGateway(t)

	loaded, err := gateway.Get("atlantis")

	assert.Nil(t, loaded)
	assert.ErrorIs(t, err, model.ErrCacheMiss)
}

func TestKeysEnumeratesEntriesInOrder(t *testing.T) {
	gateway := newTestGateway(t)

	require.NoError(t, gateway.Put("paris", forecastFor("Paris", 8.0)))
	require.NoError(t, gateway.Put("current_location", forecastFor("Berlin", 5.0)))
	require.NoError(t, gateway.Put("london", forecastFor("London", 12.4)))

	keys, err := gateway.Keys()

	require.NoError(t, err)
	assert.Equal(t, []string{"current_location", "london", "paris"}, keys)
}
