package forecast

import (
	"fmt"
	"strings"

	"weather-api/internal/domain/gateway/api"
	"weather-api/internal/domain/gateway/db"
	"weather-api/internal/domain/gateway/queue"
	"weather-api/internal/domain/model/external"
	"weather-api/pkg/log"
)

type forecastUseCase struct {
	searchLimit  int
	queueName    string
	batchSize    int
	apiGateway   api.WeatherGateway
	cacheGateway db.WeatherCacheGateway
	queueSender  queue.Sender
}

func NewForecastUseCase(searchLimit int, queueName string, batchSize int, apiGateway api.WeatherGateway, cacheGateway db.WeatherCacheGateway, queueSender queue.Sender) UseCase {
	return &forecastUseCase{
		searchLimit:  searchLimit,
		queueName:    queueName,
		batchSize:    batchSize,
		apiGateway:   apiGateway,
		cacheGateway: cacheGateway,
		queueSender:  queueSender,
	}
}

// GetWeather fetches the forecast for a city with cache fallback
func (uc *forecastUseCase) GetWeather(city string) (*external.ForecastResponse, error) {
	key := strings.ToLower(city)

	response, err := uc.apiGateway.GetForecast(city)
	if err != nil {
		return uc.fallbackToCache(key, err)
	}

	uc.persist(key, response)
	return response, nil
}

// GetWeatherByLocation fetches the forecast for a coordinate pair with cache fallback
func (uc *forecastUseCase) GetWeatherByLocation(lat float64, lon float64) (*external.ForecastResponse, error) {
	response, err := uc.apiGateway.GetForecastByCoordinates(lat, lon)
	if err != nil {
		return uc.fallbackToCache(CurrentLocationKey, err)
	}

	uc.persist(CurrentLocationKey, response)
	return response, nil
}

// fallbackToCache returns the cached payload for the key when present.
// A cache miss escalates the original fetch failure, not the miss.
func (uc *forecastUseCase) fallbackToCache(key string, fetchErr error) (*external.ForecastResponse, error) {
	cached, cacheErr := uc.cacheGateway.Get(key)
	if cacheErr != nil {
		return nil, fetchErr
	}

	log.Infof("Remote fetch failed for key '%s', serving cached payload: %v", key, fetchErr)
	return cached, nil
}

// persist upserts the fetched payload. A storage failure does not invalidate
// the fetched response, so it is logged and the response is still returned.
func (uc *forecastUseCase) persist(key string, response *external.ForecastResponse) {
	if err := uc.cacheGateway.Put(key, response); err != nil {
		log.Warnf("Failed to cache forecast for key '%s': %v", key, err)
	}
}

// SearchCities passes a suggestion query to the remote API
func (uc *forecastUseCase) SearchCities(query string) ([]external.GeoLocation, error) {
	return uc.apiGateway.SearchCities(query, uc.searchLimit)
}

// RefreshCachedCity re-fetches a cached city so its entry stays warm.
// The current-location key has no city name to refetch by and is skipped.
func (uc *forecastUseCase) RefreshCachedCity(key string) error {
	if key == CurrentLocationKey {
		log.Infof("Skipping refresh for key '%s'", key)
		return nil
	}

	_, err := uc.GetWeather(key)
	if err != nil {
		return fmt.Errorf("failed to refresh forecast for key '%s': %w", key, err)
	}

	log.Infof("Refreshed cached forecast for key '%s'", key)
	return nil
}

// EnqueueAllCachedCities enqueues every cached city key for refresh in batches
func (uc *forecastUseCase) EnqueueAllCachedCities(requestID string) error {
	keys, err := uc.cacheGateway.Keys()
	if err != nil {
		return fmt.Errorf("failed to enumerate cached cities: %w", err)
	}

	var pending []queue.BatchMessage
	totalEnqueued := 0
	totalFailed := 0

	flush := func() {
		if len(pending) == 0 {
			return
		}

		result, err := uc.queueSender.SendMessageBatch(uc.queueName, pending)
		if err != nil {
			log.Warnf("Failed to send refresh batch (request %s): %v", requestID, err)
			totalFailed += len(pending)
		} else {
			totalEnqueued += len(result.Successful)
			totalFailed += len(result.Failed)
		}
		pending = pending[:0]
	}

	for i, key := range keys {
		if key == CurrentLocationKey {
			continue
		}

		// Batch entry IDs only allow [a-zA-Z0-9_-], so index instead of key.
		pending = append(pending, queue.BatchMessage{
			MessageID: fmt.Sprintf("refresh-%s-%d", requestID, i),
			Body:      RefreshMessage{Key: key},
		})

		if len(pending) >= uc.batchSize {
			flush()
		}
	}
	flush()

	log.Infof("Completed refresh enqueue (request %s): %d enqueued, %d failed", requestID, totalEnqueued, totalFailed)
	return nil
}

// RefreshMessage is the queue payload for a single cache refresh
type RefreshMessage struct {
	Key string `json:"key"`
}
