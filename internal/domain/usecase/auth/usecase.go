package auth

import (
	"weather-api/internal/domain/model"
)

type UseCase interface {
	// Login authenticates an existing account. Any provider failure is
	// returned as a *model.AuthError, never propagated raw.
	Login(email string, password string) (*model.AuthUser, error)

	// Signup creates a new account. The display name is accepted but not
	// applied to the provider profile; the provider default is kept.
	Signup(name string, email string, password string) (*model.AuthUser, error)

	// Logout drops the current session. Fire-and-forget, no error path.
	Logout()

	// CurrentUser returns the signed-in identity, or nil when there is none
	CurrentUser() *model.AuthUser
}
