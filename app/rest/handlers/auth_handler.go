package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"beesides-api/app/domain"
	"beesides-api/app/port"
	apperrors "beesides-api/app/utils/errors"
	"beesides-api/app/utils/validator"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authUsecase port.AuthUsecase
	validator   *validator.Validator
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase port.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator.New(),
		logger:      logger,
	}
}

// Register creates a new platform identity together with its profile document.
// POST /api/auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.RegisterRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind register request",
			"error", err,
			"content_type", c.Request().Header.Get("Content-Type"))
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request format",
			Code:    string(apperrors.ErrCodeInvalidInput),
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		h.logger.Warn("register request validation failed", "error", err, "email", req.Email)
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Code:    string(apperrors.ErrCodeValidationFailed),
			Details: err.Error(),
		})
	}

	result, err := h.authUsecase.Register(ctx, &req)
	if err != nil {
		h.logger.Error("registration failed", "email", req.Email, "error", err)
		return respondError(c, http.StatusBadRequest, "Failed to register user", err)
	}

	h.logger.Info("user registered", "user_id", result.User.ID, "email", req.Email)

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"user":    result.User,
		"session": result.Session,
		"message": "User created successfully",
	})
}

// Login resolves the identity for an email and fabricates a session
// descriptor. The returned descriptor is informational only, the actual
// credential remains the platform-issued bearer token.
// POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request format",
			Code:    string(apperrors.ErrCodeInvalidInput),
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Code:    string(apperrors.ErrCodeValidationFailed),
			Details: err.Error(),
		})
	}

	result, err := h.authUsecase.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.Warn("login failed", "email", req.Email, "error", err)
		return respondError(c, http.StatusUnauthorized, "Invalid credentials", err)
	}

	h.logger.Info("user logged in", "user_id", result.User.ID)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user":    result.User,
		"session": result.Session,
	})
}

// CurrentUser fetches the identity the bearer token denotes. The token is
// treated as the identity's unique id.
// GET /api/auth/user
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	ctx := c.Request().Context()

	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if auth == "" {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "No authorization header provided",
		})
	}

	token := bearerToken(auth)
	user, err := h.authUsecase.CurrentUser(ctx, token)
	if err != nil {
		h.logger.Warn("current user lookup failed", "error", err)
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "Invalid or expired token",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user": user,
	})
}

// Logout deletes the supplied platform session.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		SessionID string `json:"sessionId"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request format",
			Code:    string(apperrors.ErrCodeInvalidInput),
		})
	}

	if err := h.authUsecase.Logout(ctx, req.SessionID); err != nil {
		h.logger.Error("logout failed", "session_id", req.SessionID, "error", err)
		return respondError(c, http.StatusBadRequest, "Failed to logout", err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Logged out successfully",
	})
}

// bearerToken strips an optional "Bearer " prefix.
func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):]
	}
	return header
}
