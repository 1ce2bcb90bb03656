package state

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"
	"unicode/utf8"

	"weather-api/internal/domain/gateway/api"
	"weather-api/internal/domain/model"
	"weather-api/internal/domain/model/external"
	"weather-api/internal/domain/usecase/forecast"
	"weather-api/pkg/log"
	"weather-api/pkg/msg"
)

const (
	minSearchQueryLength = 3
	defaultDebounce      = 500 * time.Millisecond
	maxForecastDays      = 7
)

// WeatherState owns the mutable weather-facing state: loading flag, last
// forecast payload, derived view items, search suggestions and error message.
// Single writer per operation, safe for concurrent Snapshot reads. Derived
// fields are always committed together with the payload that produced them.
type WeatherState struct {
	useCase         forecast.UseCase
	locationGateway api.LocationGateway
	defaultCity     string
	debounce        time.Duration
	timeLocation    *time.Location

	mutex    sync.RWMutex
	snapshot model.WeatherSnapshot

	searchMutex  sync.Mutex
	cancelSearch context.CancelFunc
}

func NewWeatherState(useCase forecast.UseCase, locationGateway api.LocationGateway, defaultCity string) *WeatherState {
	return &WeatherState{
		useCase:         useCase,
		locationGateway: locationGateway,
		defaultCity:     defaultCity,
		debounce:        defaultDebounce,
		timeLocation:    time.Local,
	}
}

// WithDebounce overrides the search debounce interval
func (s *WeatherState) WithDebounce(debounce time.Duration) *WeatherState {
	s.debounce = debounce
	return s
}

// WithTimeLocation overrides the time zone used for per-day grouping
func (s *WeatherState) WithTimeLocation(location *time.Location) *WeatherState {
	s.timeLocation = location
	return s
}

// Snapshot returns a copy of the current state
func (s *WeatherState) Snapshot() model.WeatherSnapshot {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.snapshot
}

// FetchByCity fetches the forecast for a city and commits the result
func (s *WeatherState) FetchByCity(city string) {
	s.beginFetch()

	response, err := s.useCase.GetWeather(city)
	if err != nil {
		s.commitFailure(err)
		return
	}

	s.commitSuccess(response)
}

// FetchByCoordinates fetches the forecast for a coordinate pair
func (s *WeatherState) FetchByCoordinates(lat float64, lon float64) {
	s.beginFetch()

	response, err := s.useCase.GetWeatherByLocation(lat, lon)
	if err != nil {
		s.commitFailure(err)
		return
	}

	s.commitSuccess(response)
}

// FetchByCurrentLocation resolves the caller's position and fetches by
// coordinates. When the position cannot be resolved it falls back to the
// configured default city.
func (s *WeatherState) FetchByCurrentLocation() {
	position, err := s.locationGateway.GetCurrentLocation()
	if err != nil {
		log.Warnf("Current location unavailable, falling back to '%s': %v", s.defaultCity, err)
		s.FetchByCity(s.defaultCity)
		return
	}

	s.FetchByCoordinates(position.Lat, position.Lon)
}

// SearchCities schedules a debounced suggestion lookup. A new call cancels
// any not-yet-completed search, so at most one is active; queries shorter
// than three characters clear the suggestions without a network call.
// Lookup failures are swallowed so a transient suggestion failure never
// disturbs the forecast error.
func (s *WeatherState) SearchCities(query string) {
	s.searchMutex.Lock()
	defer s.searchMutex.Unlock()

	if s.cancelSearch != nil {
		s.cancelSearch()
		s.cancelSearch = nil
	}

	if utf8.RuneCountInString(query) < minSearchQueryLength {
		s.setSuggestions(nil)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancelSearch = cancel

	go s.runSearch(ctx, query)
}

func (s *WeatherState) runSearch(ctx context.Context, query string) {
	timer := time.NewTimer(s.debounce)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	suggestions, err := s.useCase.SearchCities(query)
	if err != nil {
		log.Infof("City search failed for query '%s': %v", query, err)
		return
	}

	// A newer search may have started while this one was in flight.
	if ctx.Err() != nil {
		return
	}

	s.setSuggestions(suggestions)
}

// ClearSuggestions empties the suggestion list, unconditionally
func (s *WeatherState) ClearSuggestions() {
	s.searchMutex.Lock()
	if s.cancelSearch != nil {
		s.cancelSearch()
		s.cancelSearch = nil
	}
	s.searchMutex.Unlock()

	s.setSuggestions(nil)
}

// ClearError clears the error message, unconditionally
func (s *WeatherState) ClearError() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.snapshot.Error = ""
}

func (s *WeatherState) beginFetch() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.snapshot.IsLoading = true
	s.snapshot.Error = ""
	s.snapshot.SearchSuggestions = nil
}

func (s *WeatherState) commitSuccess(response *external.ForecastResponse) {
	forecastItems := s.deriveForecastItems(response)
	metricItems := deriveMetricItems(response)

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.snapshot.IsLoading = false
	s.snapshot.Weather = response
	s.snapshot.ForecastItems = forecastItems
	s.snapshot.MetricItems = metricItems
	s.snapshot.Error = ""
}

// commitFailure records the error message and leaves any prior payload and
// derived items untouched, so stale data stays visible under the notice.
func (s *WeatherState) commitFailure(err error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.snapshot.IsLoading = false
	s.snapshot.Error = errorMessage(err)
}

func (s *WeatherState) setSuggestions(suggestions []external.GeoLocation) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if suggestions == nil {
		suggestions = []external.GeoLocation{}
	}
	s.snapshot.SearchSuggestions = suggestions
}

// errorMessage maps a fetch failure to its user-visible text
func errorMessage(err error) string {
	var httpErr *model.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Status == 404 {
			return msg.GetMessage("weather.city-not-found")
		}
		return msg.GetMessage("weather.api-error", httpErr.Body)
	}

	return err.Error()
}

// deriveForecastItems groups samples by calendar date in the configured time
// zone, picks the sample at local noon (or the first of the date), and keeps
// at most the first seven distinct dates in chronological order.
func (s *WeatherState) deriveForecastItems(response *external.ForecastResponse) []model.ForecastItem {
	type daySamples struct {
		date    time.Time
		samples []external.ForecastSample
	}

	grouped := make(map[string]*daySamples)
	for _, sample := range response.List {
		local := time.Unix(sample.Dt, 0).In(s.timeLocation)
		date := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.timeLocation)
		dateKey := date.Format("2006-01-02")

		if day, ok := grouped[dateKey]; ok {
			day.samples = append(day.samples, sample)
		} else {
			grouped[dateKey] = &daySamples{date: date, samples: []external.ForecastSample{sample}}
		}
	}

	days := make([]*daySamples, 0, len(grouped))
	for _, day := range grouped {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].date.Before(days[j].date)
	})

	if len(days) > maxForecastDays {
		days = days[:maxForecastDays]
	}

	items := make([]model.ForecastItem, 0, len(days))
	for _, day := range days {
		sample := day.samples[0]
		for _, candidate := range day.samples {
			if time.Unix(candidate.Dt, 0).In(s.timeLocation).Hour() == 12 {
				sample = candidate
				break
			}
		}

		icon := ""
		if len(sample.Weather) > 0 {
			icon = sample.Weather[0].Icon
		}

		items = append(items, model.ForecastItem{
			Icon:        mapIconToCategory(icon),
			DayOfWeek:   day.date.Format("Mon"),
			Date:        fmt.Sprintf("%d %s", day.date.Day(), day.date.Format("Jan")),
			Temperature: fmt.Sprintf("%d°", int(sample.Main.Temp)),
		})
	}

	return items
}

// deriveMetricItems builds the fixed metric rows from the most recent sample.
// SO2, UV index and O3 have no live source in the forecast payload and are
// deliberate placeholder constants.
func deriveMetricItems(response *external.ForecastResponse) []model.MetricItem {
	if len(response.List) == 0 {
		return []model.MetricItem{}
	}
	current := response.List[0]

	return []model.MetricItem{
		{Title: "Real Feel", Value: fmt.Sprintf("%d°", int(math.Round(current.Main.FeelsLike)))},
		{Title: "Wind", Value: fmt.Sprintf("%v km/h", current.Wind.Speed)},
		{Title: "SO2", Value: "0.9"},
		{Title: "Rain", Value: fmt.Sprintf("%d%%", int(math.Round(current.Pop*100)))},
		{Title: "UV Index", Value: "3"},
		{Title: "O3", Value: "50"},
	}
}

// mapIconToCategory maps provider icon codes to display categories.
// Unknown codes fall back to the clear-day default.
func mapIconToCategory(iconCode string) model.IconCategory {
	switch iconCode {
	case "01d":
		return model.IconClearDay
	case "01n":
		return model.IconClearNight
	case "02d", "02n":
		return model.IconPartlyCloudy
	case "03d", "03n", "04d", "04n":
		return model.IconOvercast
	case "09d", "09n", "10d", "10n":
		return model.IconRain
	case "11d", "11n":
		return model.IconThunderstorm
	case "13d", "13n":
		return model.IconSnow
	default:
		return model.IconClearDay
	}
}
