package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"beesides-api/app/port"
)

// DataHandler exposes the document passthrough routes
type DataHandler struct {
	documents port.DocumentUsecase
	logger    *slog.Logger
}

// NewDataHandler creates a new data handler
func NewDataHandler(documents port.DocumentUsecase, logger *slog.Logger) *DataHandler {
	return &DataHandler{
		documents: documents,
		logger:    logger,
	}
}

// ListDocuments lists documents in a collection. An optional `queries`
// parameter carries a JSON array of serialized platform queries; a value
// that fails to parse is logged and ignored rather than rejected.
// GET /api/data/:databaseId/:collectionId
func (h *DataHandler) ListDocuments(c echo.Context) error {
	ctx := c.Request().Context()
	databaseID := c.Param("databaseId")
	collectionID := c.Param("collectionId")

	var queries []string
	if raw := c.QueryParam("queries"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &queries); err != nil {
			h.logger.Warn("failed to parse queries parameter",
				"database_id", databaseID,
				"collection_id", collectionID,
				"error", err)
			queries = nil
		}
	}

	list, err := h.documents.ListDocuments(ctx, databaseID, collectionID, queries)
	if err != nil {
		h.logger.Error("failed to list documents",
			"database_id", databaseID,
			"collection_id", collectionID,
			"error", err)
		return respondError(c, http.StatusBadRequest, "Failed to get documents", err)
	}

	return c.JSON(http.StatusOK, list)
}

// GetDocument fetches a single document.
// GET /api/data/:databaseId/:collectionId/:documentId
func (h *DataHandler) GetDocument(c echo.Context) error {
	ctx := c.Request().Context()

	doc, err := h.documents.GetDocument(ctx,
		c.Param("databaseId"), c.Param("collectionId"), c.Param("documentId"))
	if err != nil {
		h.logger.Error("failed to get document",
			"document_id", c.Param("documentId"),
			"error", err)
		return respondError(c, http.StatusBadRequest, "Failed to get document", err)
	}

	return c.JSON(http.StatusOK, doc)
}

// CreateDocument creates a document with a server-generated unique id.
// POST /api/data/:databaseId/:collectionId
func (h *DataHandler) CreateDocument(c echo.Context) error {
	ctx := c.Request().Context()

	var data map[string]interface{}
	if err := c.Bind(&data); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request format",
		})
	}

	doc, err := h.documents.CreateDocument(ctx,
		c.Param("databaseId"), c.Param("collectionId"), data)
	if err != nil {
		h.logger.Error("failed to create document",
			"collection_id", c.Param("collectionId"),
			"error", err)
		return respondError(c, http.StatusBadRequest, "Failed to create document", err)
	}

	return c.JSON(http.StatusCreated, doc)
}

// UpdateDocument applies a partial update to a document.
// PATCH /api/data/:databaseId/:collectionId/:documentId
func (h *DataHandler) UpdateDocument(c echo.Context) error {
	ctx := c.Request().Context()

	var data map[string]interface{}
	if err := c.Bind(&data); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request format",
		})
	}

	doc, err := h.documents.UpdateDocument(ctx,
		c.Param("databaseId"), c.Param("collectionId"), c.Param("documentId"), data)
	if err != nil {
		h.logger.Error("failed to update document",
			"document_id", c.Param("documentId"),
			"error", err)
		return respondError(c, http.StatusBadRequest, "Failed to update document", err)
	}

	return c.JSON(http.StatusOK, doc)
}

// DeleteDocument removes a document.
// DELETE /api/data/:databaseId/:collectionId/:documentId
func (h *DataHandler) DeleteDocument(c echo.Context) error {
	ctx := c.Request().Context()

	err := h.documents.DeleteDocument(ctx,
		c.Param("databaseId"), c.Param("collectionId"), c.Param("documentId"))
	if err != nil {
		h.logger.Error("failed to delete document",
			"document_id", c.Param("documentId"),
			"error", err)
		return respondError(c, http.StatusBadRequest, "Failed to delete document", err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Document deleted successfully",
	})
}
