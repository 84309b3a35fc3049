package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"beesides-api/app/port"
	"beesides-api/app/rest/middleware"
)

// OnboardingHandler exposes the onboarding state routes. All routes operate
// on the authenticated identity's own profile document only.
type OnboardingHandler struct {
	onboarding port.OnboardingUsecase
	logger     *slog.Logger
}

// NewOnboardingHandler creates a new onboarding handler
func NewOnboardingHandler(onboarding port.OnboardingUsecase, logger *slog.Logger) *OnboardingHandler {
	return &OnboardingHandler{
		onboarding: onboarding,
		logger:     logger,
	}
}

// GetProgress returns the caller's onboarding progress. A missing profile
// yields the default shape, not an error.
// GET /api/onboarding/progress
func (h *OnboardingHandler) GetProgress(c echo.Context) error {
	ctx := c.Request().Context()

	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "User not authenticated"})
	}

	progress, err := h.onboarding.GetProgress(ctx, identity.ID)
	if err != nil {
		h.logger.Error("failed to fetch onboarding progress", "user_id", identity.ID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Failed to fetch onboarding progress",
			Details: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, progress)
}

// SetStep merges one named step value into the caller's onboarding state.
// POST /api/onboarding/step
func (h *OnboardingHandler) SetStep(c echo.Context) error {
	ctx := c.Request().Context()

	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "User not authenticated"})
	}

	// An explicit null data value is a valid step value; only an absent
	// data key rejects. Binding to a map keeps the two distinguishable.
	var body map[string]interface{}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request format"})
	}

	step, _ := body["step"].(string)
	data, hasData := body["data"]
	lastCompletedStep, _ := body["lastCompletedStep"].(string)

	if step == "" || !hasData {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Step and data are required"})
	}

	updated, err := h.onboarding.SetStep(ctx, identity.ID, step, data, lastCompletedStep)
	if err != nil {
		h.logger.Error("failed to update onboarding step",
			"user_id", identity.ID,
			"step", step,
			"error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: fmt.Sprintf("Failed to update onboarding step '%s'", step),
			Details: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: fmt.Sprintf("Step '%s' updated successfully", step),
		Data:    updated,
	})
}

// Complete marks onboarding finished, merging the caller-supplied progress
// object. The progress may arrive wrapped in a "progress" key or as the
// request body itself.
// POST /api/onboarding/complete
func (h *OnboardingHandler) Complete(c echo.Context) error {
	ctx := c.Request().Context()

	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "User not authenticated"})
	}

	var body map[string]interface{}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request format"})
	}

	// An empty progress object is accepted; completion then records only
	// the completed flag and timestamp. Only a null body rejects.
	progress := body
	if wrapped, ok := body["progress"].(map[string]interface{}); ok {
		progress = wrapped
	}
	if progress == nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Onboarding progress data is required"})
	}

	completed, err := h.onboarding.Complete(ctx, identity.ID, progress)
	if err != nil {
		h.logger.Error("failed to complete onboarding", "user_id", identity.ID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Failed to complete onboarding",
			Details: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Onboarding completed successfully",
		Data:    completed,
	})
}
