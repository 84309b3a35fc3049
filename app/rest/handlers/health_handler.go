package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// PlatformChecker reports whether the upstream platform is reachable.
type PlatformChecker func(ctx context.Context) error

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	checkPlatform PlatformChecker
	logger        *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(checkPlatform PlatformChecker, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		checkPlatform: checkPlatform,
		logger:        logger,
	}
}

// HealthCheck performs a basic health check
// GET /health
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Service:   "beesides-api",
		Version:   "1.0.0",
		Uptime:    time.Since(startTime).String(),
	})
}

// ReadinessCheck verifies the upstream platform is reachable before
// reporting ready.
// GET /health/ready
func (h *HealthHandler) ReadinessCheck(c echo.Context) error {
	ctx := c.Request().Context()
	checks := make(map[string]HealthStatus)

	allHealthy := true
	start := time.Now()
	if err := h.checkPlatform(ctx); err != nil {
		h.logger.Warn("platform health check failed", "error", err)
		allHealthy = false
		checks["platform"] = HealthStatus{
			Status:  "unhealthy",
			Message: err.Error(),
			Latency: time.Since(start).String(),
		}
	} else {
		checks["platform"] = HealthStatus{
			Status:  "healthy",
			Message: "connected",
			Latency: time.Since(start).String(),
		}
	}

	response := ReadinessResponse{
		Status:    getOverallStatus(allHealthy),
		Timestamp: time.Now(),
		Service:   "beesides-api",
		Checks:    checks,
	}

	statusCode := http.StatusOK
	if !allHealthy {
		statusCode = http.StatusServiceUnavailable
	}

	return c.JSON(statusCode, response)
}

// LivenessCheck performs a liveness check
// GET /health/live
func (h *HealthHandler) LivenessCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Service:   "beesides-api",
		Version:   "1.0.0",
		Uptime:    time.Since(startTime).String(),
	})
}

func getOverallStatus(allHealthy bool) string {
	if allHealthy {
		return "ready"
	}
	return "not_ready"
}

// Response types
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
}

type ReadinessResponse struct {
	Status    string                  `json:"status"`
	Timestamp time.Time               `json:"timestamp"`
	Service   string                  `json:"service"`
	Checks    map[string]HealthStatus `json:"checks"`
}

type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Latency string `json:"latency,omitempty"`
}

// startTime is set when the service starts
var startTime = time.Now()
