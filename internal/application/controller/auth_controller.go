package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-api/internal/application/state"
	"weather-api/internal/domain/model"
)

type AuthController struct {
	api                 *echo.Group
	authState           *state.AuthState
	rateLimitMiddleware echo.MiddlewareFunc
}

func NewAuthController(api *echo.Group, authState *state.AuthState, rateLimitMiddleware echo.MiddlewareFunc) *AuthController {
	return &AuthController{api: api, authState: authState, rateLimitMiddleware: rateLimitMiddleware}
}

// InitAuthRoutes initializes authentication routes
func (controller *AuthController) InitAuthRoutes() {
	controller.api.POST("/auth/login", controller.Login, controller.rateLimitMiddleware)
	controller.api.POST("/auth/signup", controller.Signup, controller.rateLimitMiddleware)
	controller.api.POST("/auth/logout", controller.Logout)
	controller.api.GET("/auth/session", controller.GetSession)
	controller.api.DELETE("/auth/error", controller.ClearError)
}

// Login godoc
// @Summary Log in with email and password
// @Description Authenticate against the identity provider and update the session state
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body model.LoginRequest true "Login credentials"
// @Success 200 {object} model.AuthSnapshot "Updated session state"
// @Failure 400 {object} map[string]string "Invalid request body or missing fields"
// @Router /auth/login [post]
func (controller *AuthController) Login(c echo.Context) error {
	var request model.LoginRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if request.Email == "" || request.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "email and password are required"})
	}

	controller.authState.Login(request.Email, request.Password)
	return c.JSON(http.StatusOK, controller.authState.Snapshot())
}

// Signup godoc
// @Summary Create an account
// @Description Create an account with the identity provider and update the session state
// @Tags auth
// @Accept json
// @Produce json
// @Param account body model.SignupRequest true "Signup data"
// @Success 200 {object} model.AuthSnapshot "Updated session state"
// @Failure 400 {object} map[string]string "Invalid request body or missing fields"
// @Router /auth/signup [post]
func (controller *AuthController) Signup(c echo.Context) error {
	var request model.SignupRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if request.Email == "" || request.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "email and password are required"})
	}

	controller.authState.Signup(request.Name, request.Email, request.Password)
	return c.JSON(http.StatusOK, controller.authState.Snapshot())
}

// Logout godoc
// @Summary Log out
// @Description Sign out and force the session state to unauthenticated
// @Tags auth
// @Produce json
// @Success 200 {object} model.AuthSnapshot "Updated session state"
// @Router /auth/logout [post]
func (controller *AuthController) Logout(c echo.Context) error {
	controller.authState.Logout()
	return c.JSON(http.StatusOK, controller.authState.Snapshot())
}

// GetSession godoc
// @Summary Get the current session state
// @Tags auth
// @Produce json
// @Success 200 {object} model.AuthSnapshot "Current session state"
// @Router /auth/session [get]
func (controller *AuthController) GetSession(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.authState.Snapshot())
}

// ClearError godoc
// @Summary Dismiss the authentication error
// @Description Transition from the error state back to unauthenticated; no-op in any other state
// @Tags auth
// @Produce json
// @Success 200 {object} model.AuthSnapshot "Updated session state"
// @Router /auth/error [delete]
func (controller *AuthController) ClearError(c echo.Context) error {
	controller.authState.ClearError()
	return c.JSON(http.StatusOK, controller.authState.Snapshot())
}
