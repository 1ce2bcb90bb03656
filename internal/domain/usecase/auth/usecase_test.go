package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"weather-api/internal/domain/model"
	"weather-api/internal/domain/model/external"
)

// MockAuthGateway is a mock implementation of the api.AuthGateway interface.
type MockAuthGateway struct {
	mock.Mock
}

func (m *MockAuthGateway) SignIn(email string, password string) (*external.IdentityResponse, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*external.IdentityResponse), args.Error(1)
}

func (m *MockAuthGateway) SignUp(email string, password string) (*external.IdentityResponse, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*external.IdentityResponse), args.Error(1)
}

func TestLoginStoresSession(t *testing.T) {
	gateway := new(MockAuthGateway)
	gateway.On("SignIn", "a@b.com", "secret").Return(&external.IdentityResponse{
		LocalID: "uid-1",
		Email:   "a@b.com",
	}, nil)

	useCase := NewAuthUseCase(gateway)
	user, err := useCase.Login("a@b.com", "secret")

	assert.NoError(t, err)
	assert.Equal(t, "uid-1", user.UID)
	assert.Equal(t, user, useCase.CurrentUser())
}

func TestLoginWrapsProviderFailure(t *testing.T) {
	gateway := new(MockAuthGateway)
	gateway.On("SignIn", "a@b.com", "wrong").Return(nil, errors.New("INVALID_PASSWORD"))

	useCase := NewAuthUseCase(gateway)
	user, err := useCase.Login("a@b.com", "wrong")

	assert.Nil(t, user)
	var authErr *model.AuthError
	assert.ErrorAs(t, err, &authErr)
	assert.NotEmpty(t, authErr.Message)
	assert.Nil(t, useCase.CurrentUser())
}

func TestSignupDoesNotApplyDisplayName(t *testing.T) {
	gateway := new(MockAuthGateway)
	gateway.On("SignUp", "new@b.com", "secret").Return(&external.IdentityResponse{
		LocalID: "uid-2",
		Email:   "new@b.com",
	}, nil)

	useCase := NewAuthUseCase(gateway)
	user, err := useCase.Signup("Ada", "new@b.com", "secret")

	assert.NoError(t, err)
	// Accounts keep the provider default name; the supplied one is not applied.
	assert.Empty(t, user.DisplayName)
	gateway.AssertCalled(t, "SignUp", "new@b.com", "secret")
}

func TestLogoutClearsSession(t *testing.T) {
	gateway := new(MockAuthGateway)
	gateway.On("SignIn", "a@b.com", "secret").Return(&external.IdentityResponse{LocalID: "uid-1"}, nil)

	useCase := NewAuthUseCase(gateway)
	_, err := useCase.Login("a@b.com", "secret")
	assert.NoError(t, err)

	useCase.Logout()
	assert.Nil(t, useCase.CurrentUser())
}

func TestCurrentUserNilWithoutSession(t *testing.T) {
	useCase := NewAuthUseCase(new(MockAuthGateway))
	assert.Nil(t, useCase.CurrentUser())
}
