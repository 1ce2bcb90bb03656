package state

import (
	"sync"

	"weather-api/internal/domain/model"
	"weather-api/internal/domain/usecase/auth"
)

// AuthState owns the four-state session model: loading, unauthenticated,
// authenticated and error. Exactly one state holds at a time and every
// transition goes through this controller.
type AuthState struct {
	useCase auth.UseCase

	mutex    sync.RWMutex
	snapshot model.AuthSnapshot
}

// NewAuthState builds the controller and immediately resolves the initial
// state from the current provider session, so it never stays in Loading.
func NewAuthState(useCase auth.UseCase) *AuthState {
	s := &AuthState{
		useCase:  useCase,
		snapshot: model.AuthSnapshot{Status: model.AuthLoading},
	}

	if user := useCase.CurrentUser(); user != nil {
		s.snapshot = model.AuthSnapshot{Status: model.AuthAuthenticated, User: user}
	} else {
		s.snapshot = model.AuthSnapshot{Status: model.AuthUnauthenticated}
	}

	return s
}

// Snapshot returns a copy of the current session state
func (s *AuthState) Snapshot() model.AuthSnapshot {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.snapshot
}

// Login authenticates and transitions to Authenticated or Error
func (s *AuthState) Login(email string, password string) {
	s.set(model.AuthSnapshot{Status: model.AuthLoading})

	user, err := s.useCase.Login(email, password)
	if err != nil {
		s.set(model.AuthSnapshot{Status: model.AuthStateError, Error: err.Error()})
		return
	}

	s.set(model.AuthSnapshot{Status: model.AuthAuthenticated, User: user})
}

// Signup creates an account and transitions to Authenticated or Error
func (s *AuthState) Signup(name string, email string, password string) {
	s.set(model.AuthSnapshot{Status: model.AuthLoading})

	user, err := s.useCase.Signup(name, email, password)
	if err != nil {
		s.set(model.AuthSnapshot{Status: model.AuthStateError, Error: err.Error()})
		return
	}

	s.set(model.AuthSnapshot{Status: model.AuthAuthenticated, User: user})
}

// Logout signs out and forces Unauthenticated unconditionally
func (s *AuthState) Logout() {
	s.useCase.Logout()
	s.set(model.AuthSnapshot{Status: model.AuthUnauthenticated})
}

// ClearError transitions Error back to Unauthenticated; no-op otherwise
func (s *AuthState) ClearError() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.snapshot.Status == model.AuthStateError {
		s.snapshot = model.AuthSnapshot{Status: model.AuthUnauthenticated}
	}
}

func (s *AuthState) set(snapshot model.AuthSnapshot) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.snapshot = snapshot
}
