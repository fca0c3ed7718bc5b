package middleware

import (
	"context"
	"net/http"
	"strings"

	"lexi2/internal/common"
	"lexi2/internal/services"

	"github.com/labstack/echo/v4"
)

func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return ""
	}
	return token
}

func withIdentity(c echo.Context, claims *services.TokenClaims) error {
	userID, err := claims.UserID()
	if err != nil {
		return err
	}
	ctx := context.WithValue(c.Request().Context(), common.UserIDKey, userID)
	ctx = context.WithValue(ctx, common.UserEmailKey, claims.Email)
	c.SetRequest(c.Request().WithContext(ctx))
	return nil
}

// RequireAuth rejects requests without a valid bearer token. Expired and
// invalid tokens are distinguished internally but both map to 401.
func RequireAuth(authService services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing token")
			}

			claims, err := authService.ValidateToken(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			if err := withIdentity(c, claims); err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			return next(c)
		}
	}
}

// OptionalAuth attaches identity when a valid bearer token is present and
// continues anonymously otherwise. Malformed and expired tokens degrade to
// anonymous rather than erroring; endpoints needing strict enforcement use
// RequireAuth.
func OptionalAuth(authService services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if claims := authService.ValidateTokenOptional(bearerToken(c)); claims != nil {
				if err := withIdentity(c, claims); err != nil {
					return next(c)
				}
			}
			return next(c)
		}
	}
}
