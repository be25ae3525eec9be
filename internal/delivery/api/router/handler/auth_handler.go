// Package handler holds the echo handlers of the HTTP API.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"hosting/config"
	"hosting/internal/delivery/api/middleware"
	"hosting/internal/delivery/api/response"
	"hosting/internal/domain/entity"
	"hosting/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler serves registration, login and logout.
type AuthHandler struct {
	authUC       usecase.AuthUsecase
	cookieSecure bool
	cookieDomain string
	logger       *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	h := &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
	if params.Config != nil && params.Config.Auth != nil {
		h.cookieSecure = params.Config.Auth.CookieSecure
		h.cookieDomain = params.Config.Auth.CookieDomain
	}

	return h
}

// LoginRequest accepts either a form or a JSON body. Username carries the email.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// RegisterRequest is the body of POST /register. Services is accepted for
// compatibility and ignored; new accounts start with empty ledgers.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,maxbytes=72"`
	Role     string `json:"role" validate:"omitempty,max=32"`
	Services []any  `json:"services"`
}

// RegisterResponse is the body of a successful registration.
type RegisterResponse struct {
	Message string               `json:"message"`
	User    entity.PublicAccount `json:"user"`
}

// Register creates an account.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequestWithDetails(c, "INVALID_INPUT", "Invalid registration input", nil)
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, RegisterResponse{
		Message: "User created successfully",
		User:    output.Account,
	})
}

// Login verifies the credentials and stores the access token in an HttpOnly cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequestWithDetails(c, "INVALID_INPUT", "Invalid login input", nil)
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Identifier: req.Username,
		Password:   req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	maxAge := int(time.Until(output.ExpiresAt).Seconds())
	if maxAge < 1 {
		maxAge = 1
	}

	c.SetCookie(h.newCookie(output.AccessToken, output.ExpiresAt, maxAge))

	return response.Message(c, http.StatusOK, "Login successful")
}

// Logout clears the access token cookie. The token itself stays valid until it expires.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.newCookie("", time.Unix(0, 0), -1))

	return response.Message(c, http.StatusOK, "Logout successful")
}

func (h *AuthHandler) newCookie(value string, expires time.Time, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    value,
		Path:     "/",
		Domain:   h.cookieDomain,
		Expires:  expires,
		MaxAge:   maxAge,
		Secure:   h.cookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
