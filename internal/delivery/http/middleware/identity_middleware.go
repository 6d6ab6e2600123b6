// Package middleware contains the HTTP middleware chain: identity resolution,
// route access policy, request logging, and error translation.
package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "resumebuilder/internal/delivery/context"
	"resumebuilder/internal/domain/entity"
	"resumebuilder/internal/domain/repository"
	"resumebuilder/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// IdentityMiddleware resolves the acting principal from a bearer token.
// Resolution is best-effort: a missing, malformed, expired, or forged token
// never fails the request here. The request simply proceeds anonymously and
// the access policy decides whether anonymity is acceptable for the route.
type IdentityMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewIdentityMiddleware is the constructor for IdentityMiddleware.
func NewIdentityMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository, logger *slog.Logger) *IdentityMiddleware {
	return &IdentityMiddleware{tokenSvc: tokenSvc, userRepo: userRepo, logger: logger}
}

// Resolve attaches a Principal to the request context when a valid token
// identifies a known account, and does nothing otherwise.
func (m *IdentityMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := extractBearerToken(c)
		if raw == "" {
			return next(c)
		}

		claims, err := m.tokenSvc.Verify(raw)
		if err != nil {
			m.logger.Debug("Token verification failed, continuing anonymously", slog.Any("error", err))

			return next(c)
		}

		user, err := m.userRepo.FindByEmail(c.Request().Context(), claims.Subject)
		if err != nil {
			m.logger.Debug("Token subject has no account, continuing anonymously", slog.String("subject", claims.Subject), slog.Any("error", err))

			return next(c)
		}

		principal := &entity.Principal{
			Email: user.Email,
			Roles: user.Roles,
		}

		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}

// extractBearerToken pulls the raw token out of the Authorization header.
// Returns empty for a missing header or any non-Bearer scheme.
func extractBearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" || !strings.HasPrefix(authHeader, bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
}
