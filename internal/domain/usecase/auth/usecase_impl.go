package auth

import (
	"sync"

	"weather-api/internal/domain/gateway/api"
	"weather-api/internal/domain/model"
	"weather-api/internal/domain/model/external"
	"weather-api/pkg/log"
)

type authUseCase struct {
	authGateway api.AuthGateway

	mutex   sync.RWMutex
	session *model.AuthUser
}

func NewAuthUseCase(authGateway api.AuthGateway) UseCase {
	return &authUseCase{
		authGateway: authGateway,
	}
}

// Login authenticates an existing account
func (uc *authUseCase) Login(email string, password string) (*model.AuthUser, error) {
	response, err := uc.authGateway.SignIn(email, password)
	if err != nil {
		return nil, wrapAuthFailure(err)
	}

	user := toAuthUser(response)
	uc.setSession(user)

	log.Infof("User '%s' signed in", user.Email)
	return user, nil
}

// Signup creates a new account. The supplied display name is not pushed to
// the provider profile; accounts keep the provider default.
func (uc *authUseCase) Signup(name string, email string, password string) (*model.AuthUser, error) {
	response, err := uc.authGateway.SignUp(email, password)
	if err != nil {
		return nil, wrapAuthFailure(err)
	}

	user := toAuthUser(response)
	uc.setSession(user)

	log.Infof("User '%s' signed up", user.Email)
	return user, nil
}

// Logout drops the current session
func (uc *authUseCase) Logout() {
	uc.setSession(nil)
}

// CurrentUser returns the signed-in identity, or nil when there is none
func (uc *authUseCase) CurrentUser() *model.AuthUser {
	uc.mutex.RLock()
	defer uc.mutex.RUnlock()
	return uc.session
}

func (uc *authUseCase) setSession(user *model.AuthUser) {
	uc.mutex.Lock()
	defer uc.mutex.Unlock()
	uc.session = user
}

func toAuthUser(response *external.IdentityResponse) *model.AuthUser {
	return &model.AuthUser{
		UID:         response.LocalID,
		Email:       response.Email,
		DisplayName: response.DisplayName,
	}
}

// wrapAuthFailure guarantees every provider failure surfaces as *model.AuthError
func wrapAuthFailure(err error) error {
	if _, ok := err.(*model.AuthError); ok {
		return err
	}
	return &model.AuthError{Message: err.Error()}
}
