package api

import (
	"weather-api/internal/domain/model"
	"weather-api/internal/domain/model/external"
	"weather-api/pkg/http"
)

// authGatewayImpl implements the AuthGateway interface
type authGatewayImpl struct {
	httpClient *http.Client
	apiKey     string
}

// NewAuthGateway creates a new instance of AuthGateway with HTTP client
func NewAuthGateway(baseUrl string, apiKey string, clientOptions http.ClientOptions) AuthGateway {
	httpClient := http.NewHttpClient(baseUrl, clientOptions)

	return &authGatewayImpl{
		httpClient: httpClient,
		apiKey:     apiKey,
	}
}

// SignIn authenticates an existing account with email and password
func (a *authGatewayImpl) SignIn(email string, password string) (*external.IdentityResponse, error) {
	return a.post("/v1/accounts:signInWithPassword", external.SignInRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
}

// SignUp creates a new account with email and password
func (a *authGatewayImpl) SignUp(email string, password string) (*external.IdentityResponse, error) {
	return a.post("/v1/accounts:signUp", external.SignUpRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
}

func (a *authGatewayImpl) post(path string, body any) (*external.IdentityResponse, error) {
	successResp, errResp, _, err := a.httpClient.Request().
		WithMethod(http.POST).
		WithPath(path).
		WithQueryParam("key", a.apiKey).
		WithBody(body).
		WithSuccessResp(&external.IdentityResponse{}).
		WithErrorResp(&external.IdentityErrorResponse{}).
		Execute()

	if err == nil {
		response := successResp.(*external.IdentityResponse)
		return response, nil
	}

	if errResp != nil {
		errorResponse := errResp.(*external.IdentityErrorResponse)
		return nil, &model.AuthError{Message: errorResponse.Error.Message}
	}

	return nil, &model.AuthError{Message: err.Error()}
}
