package api

import (
	"strconv"

	"weather-api/internal/domain/model"
	"weather-api/internal/domain/model/external"
	"weather-api/pkg/http"
)

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient *http.Client
	apiKey     string
	units      string
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(baseUrl string, apiKey string, units string, clientOptions http.ClientOptions) WeatherGateway {
	httpClient := http.NewHttpClient(baseUrl, clientOptions)

	return &weatherGatewayImpl{
		httpClient: httpClient,
		apiKey:     apiKey,
		units:      units,
	}
}

// GetForecast gets the multi-day forecast for a city by name
func (w *weatherGatewayImpl) GetForecast(city string) (*external.ForecastResponse, error) {
	return w.fetchForecast(map[string]string{
		"q": city,
	})
}

// GetForecastByCoordinates gets the multi-day forecast for a coordinate pair
func (w *weatherGatewayImpl) GetForecastByCoordinates(lat float64, lon float64) (*external.ForecastResponse, error) {
	return w.fetchForecast(map[string]string{
		"lat": strconv.FormatFloat(lat, 'f', -1, 64),
		"lon": strconv.FormatFloat(lon, 'f', -1, 64),
	})
}

func (w *weatherGatewayImpl) fetchForecast(queryParams map[string]string) (*external.ForecastResponse, error) {
	queryParams["appid"] = w.apiKey
	queryParams["units"] = w.units

	successResp, errResp, status, err := w.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/data/2.5/forecast").
		WithQueryParams(queryParams).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.WeatherAPIErrorResponse{}).
		Execute()

	if err == nil {
		response := successResp.(*external.ForecastResponse)
		return response, nil
	}

	if errResp != nil {
		errorResponse := errResp.(*external.WeatherAPIErrorResponse)
		return nil, &model.HTTPError{Status: status, Body: errorResponse.Message}
	}

	return nil, err
}

// SearchCities searches the geocoding endpoint for city suggestions
func (w *weatherGatewayImpl) SearchCities(query string, limit int) ([]external.GeoLocation, error) {
	successResp, errResp, status, err := w.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/geo/1.0/direct").
		WithQueryParams(map[string]string{
			"q":     query,
			"limit": strconv.Itoa(limit),
			"appid": w.apiKey,
		}).
		WithSuccessResp(&[]external.GeoLocation{}).
		WithErrorResp(&external.WeatherAPIErrorResponse{}).
		Execute()

	if err == nil {
		response := successResp.(*[]external.GeoLocation)
		return *response, nil
	}

	if errResp != nil {
		errorResponse := errResp.(*external.WeatherAPIErrorResponse)
		return nil, &model.HTTPError{Status: status, Body: errorResponse.Message}
	}

	return nil, err
}
