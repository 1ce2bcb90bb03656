package model

// AuthUser is the identity reported by the provider for a signed-in session.
type AuthUser struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}

// AuthStatus enumerates the session states. Exactly one holds at a time.
type AuthStatus string

const (
	AuthLoading         AuthStatus = "LOADING"
	AuthUnauthenticated AuthStatus = "UNAUTHENTICATED"
	AuthAuthenticated   AuthStatus = "AUTHENTICATED"
	AuthStateError      AuthStatus = "ERROR"
)

// AuthSnapshot is an immutable copy of the session state. User is set only
// when Status is AuthAuthenticated; Error only when Status is AuthStateError.
type AuthSnapshot struct {
	Status AuthStatus `json:"status"`
	User   *AuthUser  `json:"user,omitempty"`
	Error  string     `json:"error,omitempty"`
}

// LoginRequest is the login form payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the signup form payload.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
