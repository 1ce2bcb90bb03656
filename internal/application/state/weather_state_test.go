package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-api/internal/domain/model"
	"weather-api/internal/domain/model/external"
	"weather-api/pkg/msg"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "weather-state-test")
	if err != nil {
		panic(err)
	}

	path := filepath.Join(dir, "messages.yml")
	content := "weather:\n" +
		"  city-not-found: \"City not found. Please enter a valid city name.\"\n" +
		"  api-error: \"API Error: {0}\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		panic(err)
	}
	msg.Init(path)

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

// fakeForecastUseCase records calls and returns canned results. Search calls
// happen on the debounce goroutine, so access is mutex guarded.
type fakeForecastUseCase struct {
	mutex sync.Mutex

	weatherResponse *external.ForecastResponse
	weatherErr      error
	searchResults   []external.GeoLocation
	searchErr       error

	cityCalls       []string
	coordinateCalls [][2]float64
	searchCalls     []string
}

func (f *fakeForecastUseCase) GetWeather(city string) (*external.ForecastResponse, error) {
	f.mutex.Lock()
	f.cityCalls = append(f.cityCalls, city)
	f.mutex.Unlock()
	return f.weatherResponse, f.weatherErr
}

func (f *fakeForecastUseCase) GetWeatherByLocation(lat float64, lon float64) (*external.ForecastResponse, error) {
	f.mutex.Lock()
	f.coordinateCalls = append(f.coordinateCalls, [2]float64{lat, lon})
	f.mutex.Unlock()
	return f.weatherResponse, f.weatherErr
}

func (f *fakeForecastUseCase) SearchCities(query string) ([]external.GeoLocation, error) {
	f.mutex.Lock()
	f.searchCalls = append(f.searchCalls, query)
	f.mutex.Unlock()
	return f.searchResults, f.searchErr
}

func (f *fakeForecastUseCase) RefreshCachedCity(string) error { return nil }

func (f *fakeForecastUseCase) EnqueueAllCachedCities(string) error { return nil }

func (f *fakeForecastUseCase) recordedSearchCalls() []string {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return append([]string(nil), f.searchCalls...)
}

type fakeLocationGateway struct {
	response *external.GeoIPResponse
	err      error
}

func (f *fakeLocationGateway) GetCurrentLocation() (*external.GeoIPResponse, error) {
	return f.response, f.err
}

// hourlySeries builds samples every 3 hours for the given number of days,
// starting at midnight UTC. The noon sample of each day carries a
// recognizable temperature of 20 + day index.
func hourlySeries(days int) *external.ForecastResponse {
	base := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)

	var samples []external.ForecastSample
	for day := 0; day < days; day++ {
		for hour := 0; hour < 24; hour += 3 {
			ts := base.AddDate(0, 0, day).Add(time.Duration(hour) * time.Hour)
			temp := 10.0
			if hour == 12 {
				temp = float64(20 + day)
			}
			samples = append(samples, external.ForecastSample{
				Dt:      ts.Unix(),
				Main:    external.MainMetrics{Temp: temp, FeelsLike: temp - 1.4, Humidity: 60},
				Weather: []external.Condition{{ID: 800, Main: "Clear", Description: "clear sky", Icon: "01d"}},
				Wind:    external.Wind{Speed: 12, Deg: 90},
				Pop:     0.4,
			})
		}
	}

	return &external.ForecastResponse{
		List: samples,
		City: external.CityInfo{Name: "London", Country: "GB"},
	}
}

func newTestState(useCase *fakeForecastUseCase) *WeatherState {
	return NewWeatherState(useCase, &fakeLocationGateway{err: errors.New("unavailable")}, "London").
		WithDebounce(20 * time.Millisecond).
		WithTimeLocation(time.UTC)
}

func TestInitialSnapshotIsNotLoading(t *testing.T) {
	s := newTestState(&fakeForecastUseCase{})

	snapshot := s.Snapshot()

	assert.False(t, snapshot.IsLoading)
	assert.Empty(t, snapshot.Error)
	assert.Nil(t, snapshot.Weather)
}

func TestFetchByCityDerivesOneItemPerDay(t *testing.T) {
	useCase := &fakeForecastUseCase{weatherResponse: hourlySeries(5)}
	s := newTestState(useCase)

	s.FetchByCity("London")
	snapshot := s.Snapshot()

	require.Len(t, snapshot.ForecastItems, 5)
	assert.False(t, snapshot.IsLoading)
	assert.Empty(t, snapshot.Error)

	for i, item := range snapshot.ForecastItems {
		// Noon sample wins over the first sample of the day.
		assert.Equal(t, fmt.Sprintf("%d°", 20+i), item.Temperature)
		assert.Equal(t, model.IconClearDay, item.Icon)
		assert.NotEmpty(t, item.DayOfWeek)
		assert.NotEmpty(t, item.Date)
	}

	assert.Equal(t, "Mon", snapshot.ForecastItems[0].DayOfWeek)
	assert.Equal(t, "6 Jan", snapshot.ForecastItems[0].Date)
	assert.Equal(t, "7 Jan", snapshot.ForecastItems[1].Date)
}

func TestForecastItemsCappedAtSevenDaysInOrder(t *testing.T) {
	useCase := &fakeForecastUseCase{weatherResponse: hourlySeries(10)}
	s := newTestState(useCase)

	s.FetchByCity("London")
	items := s.Snapshot().ForecastItems

	require.Len(t, items, 7)
	assert.Equal(t, "6 Jan", items[0].Date)
	assert.Equal(t, "12 Jan", items[6].Date)
}

func TestDayWithoutNoonSampleUsesFirstSample(t *testing.T) {
	ts := time.Date(2025, time.January, 6, 15, 0, 0, 0, time.UTC)
	response := &external.ForecastResponse{
		List: []external.ForecastSample{
			{
				Dt:      ts.Unix(),
				Main:    external.MainMetrics{Temp: 7.9},
				Weather: []external.Condition{{Icon: "10d"}},
			},
			{
				Dt:      ts.Add(3 * time.Hour).Unix(),
				Main:    external.MainMetrics{Temp: 5.0},
				Weather: []external.Condition{{Icon: "01n"}},
			},
		},
	}
	s := newTestState(&fakeForecastUseCase{weatherResponse: response})

	s.FetchByCity("London")
	items := s.Snapshot().ForecastItems

	require.Len(t, items, 1)
	assert.Equal(t, "7°", items[0].Temperature)
	assert.Equal(t, model.IconRain, items[0].Icon)
}

func TestUnknownIconCodeMapsToClearDay(t *testing.T) {
	assert.Equal(t, model.IconClearDay, mapIconToCategory("50d"))
	assert.Equal(t, model.IconClearDay, mapIconToCategory(""))
	assert.Equal(t, model.IconThunderstorm, mapIconToCategory("11n"))
	assert.Equal(t, model.IconSnow, mapIconToCategory("13d"))
}

func TestMetricItemsUsePlaceholdersWhereNoLiveSource(t *testing.T) {
	useCase := &fakeForecastUseCase{weatherResponse: hourlySeries(1)}
	s := newTestState(useCase)

	s.FetchByCity("London")
	metrics := s.Snapshot().MetricItems

	require.Len(t, metrics, 6)
	byTitle := make(map[string]string)
	for _, metric := range metrics {
		byTitle[metric.Title] = metric.Value
	}

	assert.Equal(t, "9°", byTitle["Real Feel"])
	assert.Equal(t, "12 km/h", byTitle["Wind"])
	assert.Equal(t, "40%", byTitle["Rain"])
	assert.Equal(t, "0.9", byTitle["SO2"])
	assert.Equal(t, "3", byTitle["UV Index"])
	assert.Equal(t, "50", byTitle["O3"])
}

func TestFetchFailureKeepsStaleDataVisible(t *testing.T) {
	useCase := &fakeForecastUseCase{weatherResponse: hourlySeries(3)}
	s := newTestState(useCase)

	s.FetchByCity("London")
	staleItems := s.Snapshot().ForecastItems

	useCase.weatherResponse = nil
	useCase.weatherErr = &model.HTTPError{Status: 404, Body: "city not found"}
	s.FetchByCity("Atlntis")

	snapshot := s.Snapshot()
	assert.False(t, snapshot.IsLoading)
	assert.Equal(t, "City not found. Please enter a valid city name.", snapshot.Error)
	assert.NotNil(t, snapshot.Weather)
	assert.Equal(t, staleItems, snapshot.ForecastItems)
}

func TestNon404HTTPErrorUsesAPIErrorMessage(t *testing.T) {
	useCase := &fakeForecastUseCase{weatherErr: &model.HTTPError{Status: 500, Body: "backend exploded"}}
	s := newTestState(useCase)

	s.FetchByCity("London")

	assert.Equal(t, "API Error: backend exploded", s.Snapshot().Error)
}

func TestTransportErrorUsesRawMessage(t *testing.T) {
	useCase := &fakeForecastUseCase{weatherErr: errors.New("connection refused")}
	s := newTestState(useCase)

	s.FetchByCity("London")

	assert.Equal(t, "connection refused", s.Snapshot().Error)
}

func TestSearchShortQueryClearsWithoutNetworkCall(t *testing.T) {
	useCase := &fakeForecastUseCase{searchResults: []external.GeoLocation{{Name: "Paris"}}}
	s := newTestState(useCase)

	s.SearchCities("a")
	s.SearchCities("ab")
	time.Sleep(100 * time.Millisecond)

	assert.Empty(t, useCase.recordedSearchCalls())
	assert.Empty(t, s.Snapshot().SearchSuggestions)
}

func TestSearchIssuesSingleCallAfterDebounce(t *testing.T) {
	suggestions := []external.GeoLocation{{Name: "Abcoude", Lat: 52.27, Lon: 4.97, Country: "NL"}}
	useCase := &fakeForecastUseCase{searchResults: suggestions}
	s := newTestState(useCase)

	s.SearchCities("abc")
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, []string{"abc"}, useCase.recordedSearchCalls())
	assert.Equal(t, suggestions, s.Snapshot().SearchSuggestions)
}

func TestNewerSearchSupersedesPendingOne(t *testing.T) {
	useCase := &fakeForecastUseCase{searchResults: []external.GeoLocation{{Name: "Paris"}}}
	s := newTestState(useCase)

	s.SearchCities("par")
	s.SearchCities("pari")
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, []string{"pari"}, useCase.recordedSearchCalls())
}

func TestSearchFailureIsSwallowed(t *testing.T) {
	useCase := &fakeForecastUseCase{searchErr: errors.New("dns failure")}
	s := newTestState(useCase)

	s.SearchCities("abc")
	time.Sleep(100 * time.Millisecond)

	snapshot := s.Snapshot()
	assert.Empty(t, snapshot.Error)
	assert.Empty(t, snapshot.SearchSuggestions)
}

func TestClearSuggestionsCancelsPendingSearch(t *testing.T) {
	useCase := &fakeForecastUseCase{searchResults: []external.GeoLocation{{Name: "Paris"}}}
	s := newTestState(useCase)

	s.SearchCities("paris")
	s.ClearSuggestions()
	time.Sleep(100 * time.Millisecond)

	assert.Empty(t, useCase.recordedSearchCalls())
	assert.Empty(t, s.Snapshot().SearchSuggestions)
}

func TestClearErrorIsUnconditional(t *testing.T) {
	useCase := &fakeForecastUseCase{weatherErr: errors.New("boom")}
	s := newTestState(useCase)

	s.FetchByCity("London")
	require.NotEmpty(t, s.Snapshot().Error)

	s.ClearError()
	assert.Empty(t, s.Snapshot().Error)
}

func TestFetchByCurrentLocationFallsBackToDefaultCity(t *testing.T) {
	useCase := &fakeForecastUseCase{weatherResponse: hourlySeries(1)}
	s := NewWeatherState(useCase, &fakeLocationGateway{err: errors.New("unavailable")}, "London").
		WithTimeLocation(time.UTC)

	s.FetchByCurrentLocation()

	assert.Equal(t, []string{"London"}, useCase.cityCalls)
	assert.Empty(t, useCase.coordinateCalls)
}

func TestFetchByCurrentLocationUsesResolvedCoordinates(t *testing.T) {
	useCase := &fakeForecastUseCase{weatherResponse: hourlySeries(1)}
	gateway := &fakeLocationGateway{response: &external.GeoIPResponse{Status: "success", Lat: 51.5, Lon: -0.12}}
	s := NewWeatherState(useCase, gateway, "London").WithTimeLocation(time.UTC)

	s.FetchByCurrentLocation()

	assert.Empty(t, useCase.cityCalls)
	assert.Equal(t, [][2]float64{{51.5, -0.12}}, useCase.coordinateCalls)
}
