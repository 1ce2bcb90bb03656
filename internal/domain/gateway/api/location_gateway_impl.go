package api

import (
	"fmt"

	"weather-api/internal/domain/model/external"
	"weather-api/pkg/http"
)

// locationGatewayImpl implements the LocationGateway interface
type locationGatewayImpl struct {
	httpClient *http.Client
}

// NewLocationGateway creates a new instance of LocationGateway with HTTP client
func NewLocationGateway(baseUrl string, clientOptions http.ClientOptions) LocationGateway {
	httpClient := http.NewHttpClient(baseUrl, clientOptions)

	return &locationGatewayImpl{
		httpClient: httpClient,
	}
}

// GetCurrentLocation resolves the caller's approximate coordinates
func (l *locationGatewayImpl) GetCurrentLocation() (*external.GeoIPResponse, error) {
	successResp, _, _, err := l.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/json").
		WithSuccessResp(&external.GeoIPResponse{}).
		Execute()

	if err != nil {
		return nil, err
	}

	response := successResp.(*external.GeoIPResponse)
	if response.Status != "success" {
		return nil, fmt.Errorf("location lookup failed: %s", response.Message)
	}

	return response, nil
}
