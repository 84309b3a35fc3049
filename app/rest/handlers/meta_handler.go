package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// MetaHandler serves the service banner and the static route listing
type MetaHandler struct{}

// NewMetaHandler creates a new meta handler
func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// Banner returns the service welcome payload.
// GET /
func (h *MetaHandler) Banner(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":       "Welcome to the Beesides API",
		"version":       "1.0.0",
		"documentation": "/api/docs",
	})
}

// Docs returns a static listing of all routes.
// GET /api/docs
func (h *MetaHandler) Docs(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"endpoints": map[string]interface{}{
			"auth": map[string]string{
				"register": "POST /api/auth/register",
				"login":    "POST /api/auth/login",
				"user":     "GET /api/auth/user",
				"logout":   "POST /api/auth/logout",
			},
			"data": map[string]string{
				"listDocuments":  "GET /api/data/:databaseId/:collectionId",
				"getDocument":    "GET /api/data/:databaseId/:collectionId/:documentId",
				"createDocument": "POST /api/data/:databaseId/:collectionId",
				"updateDocument": "PATCH /api/data/:databaseId/:collectionId/:documentId",
				"deleteDocument": "DELETE /api/data/:databaseId/:collectionId/:documentId",
			},
			"storage": map[string]string{
				"listFiles":  "GET /api/storage/:bucketId",
				"getFile":    "GET /api/storage/:bucketId/:fileId",
				"uploadFile": "POST /api/storage/upload/:bucketId",
				"deleteFile": "DELETE /api/storage/:bucketId/:fileId",
			},
			"onboarding": map[string]string{
				"progress": "GET /api/onboarding/progress",
				"step":     "POST /api/onboarding/step",
				"complete": "POST /api/onboarding/complete",
			},
		},
	})
}
