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

// StorageHandler exposes the file storage passthrough routes
type StorageHandler struct {
	storage   port.StorageUsecase
	validator *validator.Validator
	logger    *slog.Logger
}

// NewStorageHandler creates a new storage handler
func NewStorageHandler(storage port.StorageUsecase, logger *slog.Logger) *StorageHandler {
	return &StorageHandler{
		storage:   storage,
		validator: validator.New(),
		logger:    logger,
	}
}

// GetFile returns a file's metadata together with its download URL.
// GET /api/storage/:bucketId/:fileId
func (h *StorageHandler) GetFile(c echo.Context) error {
	ctx := c.Request().Context()

	result, err := h.storage.GetFileWithURL(ctx, c.Param("bucketId"), c.Param("fileId"))
	if err != nil {
		h.logger.Error("failed to get file",
			"bucket_id", c.Param("bucketId"),
			"file_id", c.Param("fileId"),
			"error", err)
		return respondError(c, http.StatusBadRequest, "Failed to get file", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"file": result.File,
		"url":  result.URL,
	})
}

// ListFiles lists the files in a bucket.
// GET /api/storage/:bucketId
func (h *StorageHandler) ListFiles(c echo.Context) error {
	ctx := c.Request().Context()

	list, err := h.storage.ListFiles(ctx, c.Param("bucketId"))
	if err != nil {
		h.logger.Error("failed to list files", "bucket_id", c.Param("bucketId"), "error", err)
		return respondError(c, http.StatusBadRequest, "Failed to list files", err)
	}

	return c.JSON(http.StatusOK, list)
}

// PrepareUpload reserves a file id and returns the descriptor the client
// needs to push the binary content straight to the platform.
// POST /api/storage/upload/:bucketId
func (h *StorageHandler) PrepareUpload(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.UploadRequest
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

	ticket, err := h.storage.PrepareUpload(ctx, c.Param("bucketId"), &req)
	if err != nil {
		h.logger.Error("failed to prepare upload", "bucket_id", c.Param("bucketId"), "error", err)
		return respondError(c, http.StatusBadRequest, "Failed to create file upload URL", err)
	}

	return c.JSON(http.StatusOK, ticket)
}

// DeleteFile removes a file from a bucket.
// DELETE /api/storage/:bucketId/:fileId
func (h *StorageHandler) DeleteFile(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.storage.DeleteFile(ctx, c.Param("bucketId"), c.Param("fileId")); err != nil {
		h.logger.Error("failed to delete file",
			"bucket_id", c.Param("bucketId"),
			"file_id", c.Param("fileId"),
			"error", err)
		return respondError(c, http.StatusBadRequest, "Failed to delete file", err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "File deleted successfully",
	})
}
