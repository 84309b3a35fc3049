package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"beesides-api/app/domain"
	"beesides-api/app/port"
)

// DocumentUseCase implements the document CRUD passthrough. The platform
// owns all persistence and consistency; this layer only generates ids for
// new documents and forwards.
type DocumentUseCase struct {
	documents port.DocumentGateway
	logger    *slog.Logger
}

// NewDocumentUseCase creates a new DocumentUseCase instance
func NewDocumentUseCase(documents port.DocumentGateway, logger *slog.Logger) *DocumentUseCase {
	return &DocumentUseCase{
		documents: documents,
		logger:    logger.With("component", "document_usecase"),
	}
}

// ListDocuments lists documents in a collection
func (uc *DocumentUseCase) ListDocuments(ctx context.Context, databaseID, collectionID string, queries []string) (*domain.DocumentList, error) {
	return uc.documents.ListDocuments(ctx, databaseID, collectionID, queries)
}

// GetDocument fetches a single document
func (uc *DocumentUseCase) GetDocument(ctx context.Context, databaseID, collectionID, documentID string) (domain.Document, error) {
	return uc.documents.GetDocument(ctx, databaseID, collectionID, documentID)
}

// CreateDocument creates a document under a generated unique id
func (uc *DocumentUseCase) CreateDocument(ctx context.Context, databaseID, collectionID string, data map[string]interface{}) (domain.Document, error) {
	return uc.documents.CreateDocument(ctx, databaseID, collectionID, uuid.New().String(), data)
}

// UpdateDocument applies a partial update to a document
func (uc *DocumentUseCase) UpdateDocument(ctx context.Context, databaseID, collectionID, documentID string, data map[string]interface{}) (domain.Document, error) {
	return uc.documents.UpdateDocument(ctx, databaseID, collectionID, documentID, data)
}

// DeleteDocument deletes a document
func (uc *DocumentUseCase) DeleteDocument(ctx context.Context, databaseID, collectionID, documentID string) error {
	return uc.documents.DeleteDocument(ctx, databaseID, collectionID, documentID)
}
