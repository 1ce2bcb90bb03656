package external

// SignInRequest is the identity provider's email/password sign-in body.
type SignInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

// SignUpRequest is the identity provider's account-creation body.
type SignUpRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

// IdentityResponse is the provider's response for both sign-in and sign-up.
type IdentityResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

// IdentityErrorResponse is the provider's error envelope.
type IdentityErrorResponse struct {
	Error IdentityError `json:"error"`
}

type IdentityError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
