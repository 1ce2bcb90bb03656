package forecast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"weather-api/internal/domain/gateway/queue"
	"weather-api/internal/domain/model"
	"weather-api/internal/domain/model/external"
)

// MockWeatherGateway is a mock implementation of the api.WeatherGateway interface.
type MockWeatherGateway struct {
	mock.Mock
}

func (m *MockWeatherGateway) GetForecast(city string) (*external.ForecastResponse, error) {
	args := m.Called(city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*external.ForecastResponse), args.Error(1)
}

func (m *MockWeatherGateway) GetForecastByCoordinates(lat float64, lon float64) (*external.ForecastResponse, error) {
	args := m.Called(lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*external.ForecastResponse), args.Error(1)
}

func (m *MockWeatherGateway) SearchCities(query string, limit int) ([]external.GeoLocation, error) {
	args := m.Called(query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]external.GeoLocation), args.Error(1)
}

// MockWeatherCacheGateway is a mock implementation of the db.WeatherCacheGateway interface.
type MockWeatherCacheGateway struct {
	mock.Mock
}

func (m *MockWeatherCacheGateway) Put(key string, response *external.ForecastResponse) error {
	args := m.Called(key, response)
	return args.Error(0)
}

func (m *MockWeatherCacheGateway) Get(key string) (*external.ForecastResponse, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*external.ForecastResponse), args.Error(1)
}

func (m *MockWeatherCacheGateway) Keys() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockSender is a mock implementation of the queue.Sender interface.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) SendMessage(queueName string, body any) error {
	args := m.Called(queueName, body)
	return args.Error(0)
}

func (m *MockSender) SendMessageBatch(queueName string, messages []queue.BatchMessage) (*queue.BatchResult, error) {
	args := m.Called(queueName, messages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queue.BatchResult), args.Error(1)
}

func sampleResponse(city string) *external.ForecastResponse {
	return &external.ForecastResponse{
		List: []external.ForecastSample{
			{
				Dt:      1735732800,
				Main:    external.MainMetrics{Temp: 12.4, FeelsLike: 11.1, Humidity: 70},
				Weather: []external.Condition{{ID: 800, Main: "Clear", Description: "clear sky", Icon: "01d"}},
				Wind:    external.Wind{Speed: 4.2, Deg: 180},
			},
		},
		City: external.CityInfo{Name: city, Country: "GB"},
	}
}

func newUseCase(apiGateway *MockWeatherGateway, cacheGateway *MockWeatherCacheGateway, sender *MockSender) UseCase {
	return NewForecastUseCase(5, "refresh-queue", 10, apiGateway, cacheGateway, sender)
}

func TestGetWeatherCachesUnderNormalizedKey(t *testing.T) {
	apiGateway := new(MockWeatherGateway)
	cacheGateway := new(MockWeatherCacheGateway)
	response := sampleResponse("London")

	apiGateway.On("GetForecast", "London").Return(response, nil)
	cacheGateway.On("Put", "london", response).Return(nil)

	result, err := newUseCase(apiGateway, cacheGateway, new(MockSender)).GetWeather("London")

	assert.NoError(t, err)
	assert.Equal(t, response, result)
	cacheGateway.AssertCalled(t, "Put", "london", response)
}

func TestGetWeatherFallsBackToCacheOnFetchFailure(t *testing.T) {
	apiGateway := new(MockWeatherGateway)
	cacheGateway := new(MockWeatherCacheGateway)
	cached := sampleResponse("London")

	apiGateway.On("GetForecast", "London").Return(nil, errors.New("connection refused"))
	cacheGateway.On("Get", "london").Return(cached, nil)

	result, err := newUseCase(apiGateway, cacheGateway, new(MockSender)).GetWeather("London")

	assert.NoError(t, err)
	assert.Equal(t, cached, result)
	cacheGateway.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestGetWeatherPropagatesOriginalFailureOnCacheMiss(t *testing.T) {
	apiGateway := new(MockWeatherGateway)
	cacheGateway := new(MockWeatherCacheGateway)
	fetchErr := &model.HTTPError{Status: 404, Body: "city not found"}

	apiGateway.On("GetForecast", "Atlntis").Return(nil, fetchErr)
	cacheGateway.On("Get", "atlntis").Return(nil, model.ErrCacheMiss)

	result, err := newUseCase(apiGateway, cacheGateway, new(MockSender)).GetWeather("Atlntis")

	assert.Nil(t, result)
	assert.Equal(t, fetchErr, err)
}

func TestGetWeatherReturnsResponseEvenWhenCacheWriteFails(t *testing.T) {
	apiGateway := new(MockWeatherGateway)
	cacheGateway := new(MockWeatherCacheGateway)
	response := sampleResponse("London")

	apiGateway.On("GetForecast", "London").Return(response, nil)
	cacheGateway.On("Put", "london", response).Return(errors.New("disk full"))

	result, err := newUseCase(apiGateway, cacheGateway, new(MockSender)).GetWeather("London")

	assert.NoError(t, err)
	assert.Equal(t, response, result)
}

func TestGetWeatherByLocationUsesCurrentLocationKey(t *testing.T) {
	apiGateway := new(MockWeatherGateway)
	cacheGateway := new(MockWeatherCacheGateway)
	response := sampleResponse("Paris")

	apiGateway.On("GetForecastByCoordinates", 48.85, 2.35).Return(response, nil)
	cacheGateway.On("Put", CurrentLocationKey, response).Return(nil)

	result, err := newUseCase(apiGateway, cacheGateway, new(MockSender)).GetWeatherByLocation(48.85, 2.35)

	assert.NoError(t, err)
	assert.Equal(t, response, result)
	cacheGateway.AssertCalled(t, "Put", CurrentLocationKey, response)
}

func TestGetWeatherByLocationFallsBackToCurrentLocationEntry(t *testing.T) {
	apiGateway := new(MockWeatherGateway)
	cacheGateway := new(MockWeatherCacheGateway)
	cached := sampleResponse("Paris")

	apiGateway.On("GetForecastByCoordinates", 48.85, 2.35).Return(nil, errors.New("timeout"))
	cacheGateway.On("Get", CurrentLocationKey).Return(cached, nil)

	result, err := newUseCase(apiGateway, cacheGateway, new(MockSender)).GetWeatherByLocation(48.85, 2.35)

	assert.NoError(t, err)
	assert.Equal(t, cached, result)
}

func TestSearchCitiesPropagatesFailureUnmodified(t *testing.T) {
	apiGateway := new(MockWeatherGateway)
	searchErr := errors.New("dns failure")

	apiGateway.On("SearchCities", "paris", 5).Return(nil, searchErr)

	result, err := newUseCase(apiGateway, new(MockWeatherCacheGateway), new(MockSender)).SearchCities("paris")

	assert.Nil(t, result)
	assert.Equal(t, searchErr, err)
}

func TestSearchCitiesUsesFixedLimit(t *testing.T) {
	apiGateway := new(MockWeatherGateway)
	suggestions := []external.GeoLocation{{Name: "Paris", Lat: 48.85, Lon: 2.35, Country: "FR"}}

	apiGateway.On("SearchCities", "paris", 5).Return(suggestions, nil)

	result, err := newUseCase(apiGateway, new(MockWeatherCacheGateway), new(MockSender)).SearchCities("paris")

	assert.NoError(t, err)
	assert.Equal(t, suggestions, result)
}

func TestRefreshCachedCitySkipsCurrentLocation(t *testing.T) {
	apiGateway := new(MockWeatherGateway)

	err := newUseCase(apiGateway, new(MockWeatherCacheGateway), new(MockSender)).RefreshCachedCity(CurrentLocationKey)

	assert.NoError(t, err)
	apiGateway.AssertNotCalled(t, "GetForecast", mock.Anything)
}

func TestRefreshCachedCityRefetches(t *testing.T) {
	apiGateway := new(MockWeatherGateway)
	cacheGateway := new(MockWeatherCacheGateway)
	response := sampleResponse("London")

	apiGateway.On("GetForecast", "london").Return(response, nil)
	cacheGateway.On("Put", "london", response).Return(nil)

	err := newUseCase(apiGateway, cacheGateway, new(MockSender)).RefreshCachedCity("london")

	assert.NoError(t, err)
	cacheGateway.AssertCalled(t, "Put", "london", response)
}

func TestEnqueueAllCachedCitiesSkipsSentinelAndBatches(t *testing.T) {
	cacheGateway := new(MockWeatherCacheGateway)
	sender := new(MockSender)

	cacheGateway.On("Keys").Return([]string{CurrentLocationKey, "london", "paris"}, nil)
	sender.On("SendMessageBatch", "refresh-queue", mock.MatchedBy(func(messages []queue.BatchMessage) bool {
		if len(messages) != 2 {
			return false
		}
		first := messages[0].Body.(RefreshMessage)
		second := messages[1].Body.(RefreshMessage)
		return first.Key == "london" && second.Key == "paris"
	})).Return(&queue.BatchResult{Successful: []string{"a", "b"}}, nil)

	err := newUseCase(new(MockWeatherGateway), cacheGateway, sender).EnqueueAllCachedCities("req-1")

	assert.NoError(t, err)
	sender.AssertNumberOfCalls(t, "SendMessageBatch", 1)
}
