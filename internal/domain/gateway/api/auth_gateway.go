package api

import (
	"weather-api/internal/domain/model/external"
)

// AuthGateway defines the interface for the external identity provider
type AuthGateway interface {
	// SignIn authenticates an existing account with email and password
	SignIn(email string, password string) (*external.IdentityResponse, error)

	// SignUp creates a new account with email and password
	SignUp(email string, password string) (*external.IdentityResponse, error)
}
