package handlers

import (
	"github.com/labstack/echo/v4"

	apperrors "beesides-api/app/utils/errors"
)

// ErrorResponse mirrors the error envelope every route returns on failure.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Details string `json:"error,omitempty"`
}

// SuccessResponse is the common acknowledgement envelope.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// respondError maps an error onto the uniform failure envelope. Application
// errors carry their own status and caller-safe message; anything else falls
// back to the provided status and message so internals never leak.
func respondError(c echo.Context, fallbackStatus int, fallbackMessage string, err error) error {
	if appErr, ok := apperrors.AsAppError(err); ok {
		return c.JSON(apperrors.GetHTTPStatusCode(appErr), ErrorResponse{
			Message: appErr.Message,
			Code:    string(appErr.Code),
			Details: appErr.Details,
		})
	}
	return c.JSON(fallbackStatus, ErrorResponse{Message: fallbackMessage})
}
