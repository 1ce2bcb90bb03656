package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-api/internal/application/state"
	"weather-api/pkg/util/numberutils"
)

type WeatherController struct {
	api          *echo.Group
	weatherState *state.WeatherState
}

func NewWeatherController(api *echo.Group, weatherState *state.WeatherState) *WeatherController {
	return &WeatherController{api: api, weatherState: weatherState}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather", controller.GetState)
	controller.api.POST("/weather/city/:city", controller.FetchByCity)
	controller.api.POST("/weather/location", controller.FetchByLocation)
	controller.api.POST("/weather/search", controller.SearchCities)
	controller.api.DELETE("/weather/suggestions", controller.ClearSuggestions)
	controller.api.DELETE("/weather/error", controller.ClearError)
}

// GetState godoc
// @Summary Get the current weather state
// @Description Retrieve the current weather snapshot with derived forecast and metric items
// @Tags weather
// @Produce json
// @Success 200 {object} model.WeatherSnapshot "Current weather state"
// @Router /weather [get]
func (controller *WeatherController) GetState(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.weatherState.Snapshot())
}

// FetchByCity godoc
// @Summary Fetch the forecast for a city
// @Description Fetch the forecast by city name, falling back to the local cache on failure
// @Tags weather
// @Produce json
// @Param city path string true "City name"
// @Success 200 {object} model.WeatherSnapshot "Updated weather state"
// @Router /weather/city/{city} [post]
func (controller *WeatherController) FetchByCity(c echo.Context) error {
	city := c.Param("city")
	if city == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "city is required"})
	}

	controller.weatherState.FetchByCity(city)
	return c.JSON(http.StatusOK, controller.weatherState.Snapshot())
}

// FetchByLocation godoc
// @Summary Fetch the forecast for a position
// @Description Fetch the forecast by coordinates; without lat/lon the caller's position is resolved, with a default-city fallback
// @Tags weather
// @Produce json
// @Param lat query number false "Latitude"
// @Param lon query number false "Longitude"
// @Success 200 {object} model.WeatherSnapshot "Updated weather state"
// @Router /weather/location [post]
func (controller *WeatherController) FetchByLocation(c echo.Context) error {
	latParam := c.QueryParam("lat")
	lonParam := c.QueryParam("lon")

	if latParam == "" || lonParam == "" {
		controller.weatherState.FetchByCurrentLocation()
		return c.JSON(http.StatusOK, controller.weatherState.Snapshot())
	}

	if !numberutils.IsFloat64(latParam) || !numberutils.IsFloat64(lonParam) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "lat and lon must be numbers"})
	}

	controller.weatherState.FetchByCoordinates(numberutils.ToFloat64(latParam), numberutils.ToFloat64(lonParam))
	return c.JSON(http.StatusOK, controller.weatherState.Snapshot())
}

// SearchCities godoc
// @Summary Search city suggestions
// @Description Schedule a debounced city suggestion lookup; queries under 3 characters clear the suggestions
// @Tags weather
// @Produce json
// @Param q query string true "City name query"
// @Success 202 {object} map[string]string "Search scheduled"
// @Router /weather/search [post]
func (controller *WeatherController) SearchCities(c echo.Context) error {
	query := c.QueryParam("q")

	controller.weatherState.SearchCities(query)
	return c.JSON(http.StatusAccepted, map[string]string{"message": "Search scheduled"})
}

// ClearSuggestions godoc
// @Summary Clear search suggestions
// @Tags weather
// @Produce json
// @Success 200 {object} model.WeatherSnapshot "Updated weather state"
// @Router /weather/suggestions [delete]
func (controller *WeatherController) ClearSuggestions(c echo.Context) error {
	controller.weatherState.ClearSuggestions()
	return c.JSON(http.StatusOK, controller.weatherState.Snapshot())
}

// ClearError godoc
// @Summary Dismiss the weather error notice
// @Tags weather
// @Produce json
// @Success 200 {object} model.WeatherSnapshot "Updated weather state"
// @Router /weather/error [delete]
func (controller *WeatherController) ClearError(c echo.Context) error {
	controller.weatherState.ClearError()
	return c.JSON(http.StatusOK, controller.weatherState.Snapshot())
}
