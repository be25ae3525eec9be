package middleware

import (
	"strings"

	deliverycontext "hosting/internal/delivery/context"
	domainerrors "hosting/internal/domain/errors"
	"hosting/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AccessTokenCookie is the cookie set by login and read by the auth middleware.
const AccessTokenCookie = "accessToken"

const bearerPrefix = "Bearer "

// AuthMiddleware turns a bearer token into the authorized account id.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate reads the token from the Authorization header, falling back to
// the access token cookie. Missing and invalid tokens fail the same way.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := extractToken(c)
		if token == "" {
			return domainerrors.ErrUnauthorized
		}

		accountID, err := m.authUC.Authorize(c.Request().Context(), token)
		if err != nil {
			return err
		}

		deliverycontext.SetAccountID(c, accountID)

		return next(c)
	}
}

func extractToken(c echo.Context) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		if len(header) > len(bearerPrefix) && strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			return strings.TrimSpace(header[len(bearerPrefix):])
		}

		return ""
	}

	if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
		return cookie.Value
	}

	return ""
}

// GetAccountID returns the account id set by Authenticate.
func GetAccountID(c echo.Context) (string, bool) {
	return deliverycontext.GetAccountID(c)
}
