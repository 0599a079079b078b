package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"jailoo/internal/auth"
	"jailoo/internal/domain/dto"
	"jailoo/internal/presentation"
)

type AuthConfig struct {
	Secret string
}

// AuthMiddleware guards the admin mutation endpoints: a valid Bearer token
// with the admin role is required on every call. Tokens are verified per
// request, never cached, so an expired session is caught at the next attempt.
func AuthMiddleware(cfg AuthConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			authHeader := ctx.Request().Header.Get(presentation.AuthKey)
			if err := validateAuthHeader(authHeader); err != nil {
				return ctx.JSON(http.StatusUnauthorized, dto.ErrorBody{Error: err.Error()})
			}

			claims, err := auth.Parse(cfg.Secret, strings.TrimPrefix(authHeader, presentation.BearerPrefix))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, dto.ErrorBody{Error: err.Error()})
			}

			if claims.Role != presentation.AdminRole {
				return ctx.JSON(http.StatusForbidden, dto.ErrorBody{Error: "role check failed"})
			}

			ctx.Set(presentation.PrincipalKey, claims.Subject)

			return next(ctx)
		}
	}
}

func validateAuthHeader(authHeader string) error {
	if authHeader == "" {
		return errMissingAuthHeader
	}
	if !strings.HasPrefix(authHeader, presentation.BearerPrefix) {
		return errMissingBearerPrefix
	}

	return nil
}
