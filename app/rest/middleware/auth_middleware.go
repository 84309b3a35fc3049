package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"beesides-api/app/domain"
	"beesides-api/app/port"
)

const identityContextKey = "authenticated_identity"

// AuthMiddleware provides authentication middleware
type AuthMiddleware struct {
	authUsecase port.AuthUsecase
	logger      *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authUsecase port.AuthUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authUsecase: authUsecase,
		logger:      logger,
	}
}

// RequireAuth rejects requests without a valid bearer credential and stores
// the resolved identity on the request context.
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			if auth == "" {
				return unauthorized(c, "No authorization header provided")
			}

			credential, ok := bearerCredential(auth)
			if !ok {
				return unauthorized(c, "Invalid authorization header format")
			}

			identity, err := m.authUsecase.ResolveIdentity(ctx, credential)
			if err != nil {
				if errors.Is(err, domain.ErrInvalidCredential) {
					return unauthorized(c, "Invalid or expired credentials")
				}
				m.logger.Error("identity resolution failed", "error", err)
				return unauthorized(c, "Authentication failed")
			}

			SetIdentity(c, identity)
			return next(c)
		}
	}
}

// SetIdentity attaches a resolved identity to the request context.
func SetIdentity(c echo.Context, identity *domain.Identity) {
	c.Set(identityContextKey, identity)
}

// IdentityFrom returns the identity stored by RequireAuth.
func IdentityFrom(c echo.Context) (*domain.Identity, bool) {
	identity, ok := c.Get(identityContextKey).(*domain.Identity)
	return identity, ok && identity != nil
}

// bearerCredential validates the header is exactly "Bearer <credential>".
func bearerCredential(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, map[string]interface{}{
		"error": message,
		"code":  "UNAUTHORIZED",
	})
}
