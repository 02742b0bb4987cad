package middleware

import (
	"strings"

	"github.com/tkndbj/nar24admin-sub002/internal/delivery/http/response"
	"github.com/tkndbj/nar24admin-sub002/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards the admin routes. Session handling is delegated to
// the external auth provider; the console verifies the ID token on every
// request and requires the admin claim.
type AuthMiddleware struct {
	verifier service.TokenVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAdmin validates the bearer ID token and the admin claim.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		idToken := strings.TrimPrefix(authHeader, "Bearer ")
		if idToken == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.verifier.Verify(c.Request().Context(), idToken)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		if !claims.Admin {
			return response.Forbidden(c, "FORBIDDEN", "Admin access required")
		}

		c.Set("adminUID", claims.UID)
		c.Set("adminEmail", claims.Email)

		return next(c)
	}
}
