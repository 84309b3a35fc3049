package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"beesides-api/app/config"
	"beesides-api/app/domain"
	"beesides-api/app/driver/appwrite"
)

// DocumentGateway implements port.DocumentGateway as a transparent
// passthrough to the platform's document store
type DocumentGateway struct {
	client *appwrite.Client
	logger *slog.Logger
}

// NewDocumentGateway creates a new DocumentGateway instance
func NewDocumentGateway(client *appwrite.Client, logger *slog.Logger) *DocumentGateway {
	return &DocumentGateway{
		client: client,
		logger: logger.With("component", "document_gateway"),
	}
}

// ListDocuments lists documents in a collection
func (g *DocumentGateway) ListDocuments(ctx context.Context, databaseID, collectionID string, queries []string) (*domain.DocumentList, error) {
	list, err := g.client.Databases().ListDocuments(ctx, databaseID, collectionID, queries)
	if err != nil {
		g.logger.Error("failed to list documents", "database_id", databaseID, "collection_id", collectionID, "error", err)
		return nil, platformError("failed to get documents", err)
	}

	return list, nil
}

// GetDocument fetches a single document
func (g *DocumentGateway) GetDocument(ctx context.Context, databaseID, collectionID, documentID string) (domain.Document, error) {
	doc, err := g.client.Databases().GetDocument(ctx, databaseID, collectionID, documentID)
	if err != nil {
		g.logger.Debug("failed to get document", "document_id", documentID, "error", err)
		return nil, platformError("failed to get document", err)
	}

	return doc, nil
}

// CreateDocument creates a document
func (g *DocumentGateway) CreateDocument(ctx context.Context, databaseID, collectionID, documentID string, data map[string]interface{}) (domain.Document, error) {
	doc, err := g.client.Databases().CreateDocument(ctx, databaseID, collectionID, documentID, data)
	if err != nil {
		g.logger.Error("failed to create document", "collection_id", collectionID, "error", err)
		return nil, platformError("failed to create document", err)
	}

	return doc, nil
}

// UpdateDocument applies a partial update to a document
func (g *DocumentGateway) UpdateDocument(ctx context.Context, databaseID, collectionID, documentID string, data map[string]interface{}) (domain.Document, error) {
	doc, err := g.client.Databases().UpdateDocument(ctx, databaseID, collectionID, documentID, data)
	if err != nil {
		g.logger.Error("failed to update document", "document_id", documentID, "error", err)
		return nil, platformError("failed to update document", err)
	}

	return doc, nil
}

// DeleteDocument deletes a document
func (g *DocumentGateway) DeleteDocument(ctx context.Context, databaseID, collectionID, documentID string) error {
	if err := g.client.Databases().DeleteDocument(ctx, databaseID, collectionID, documentID); err != nil {
		g.logger.Error("failed to delete document", "document_id", documentID, "error", err)
		return platformError("failed to delete document", err)
	}

	return nil
}

// ProfileGateway implements port.ProfileGateway over the configured profile
// database and collection. The document id always equals the user id.
type ProfileGateway struct {
	client       *appwrite.Client
	databaseID   string
	collectionID string
	logger       *slog.Logger
}

// NewProfileGateway creates a new ProfileGateway instance
func NewProfileGateway(client *appwrite.Client, cfg *config.Config, logger *slog.Logger) *ProfileGateway {
	return &ProfileGateway{
		client:       client,
		databaseID:   cfg.ProfileDatabaseID,
		collectionID: cfg.ProfileCollectionID,
		logger:       logger.With("component", "profile_gateway"),
	}
}

// GetProfile fetches the profile document for a user. A platform 404 is
// translated to domain.ErrProfileNotFound so callers can treat it as "no
// progress yet".
func (g *ProfileGateway) GetProfile(ctx context.Context, userID string) (domain.Document, error) {
	doc, err := g.client.Databases().GetDocument(ctx, g.databaseID, g.collectionID, userID)
	if err != nil {
		if appwrite.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, userID)
		}
		g.logger.Error("failed to get profile", "user_id", userID, "error", err)
		return nil, platformError("failed to fetch profile", err)
	}

	return doc, nil
}

// CreateProfile creates the profile document for a user
func (g *ProfileGateway) CreateProfile(ctx context.Context, userID string, data map[string]interface{}) (domain.Document, error) {
	doc, err := g.client.Databases().CreateDocument(ctx, g.databaseID, g.collectionID, userID, data)
	if err != nil {
		g.logger.Error("failed to create profile", "user_id", userID, "error", err)
		return nil, platformError("failed to create profile", err)
	}

	g.logger.Info("profile created", "user_id", userID)
	return doc, nil
}

// UpdateProfile applies a partial update to the profile document
func (g *ProfileGateway) UpdateProfile(ctx context.Context, userID string, data map[string]interface{}) (domain.Document, error) {
	doc, err := g.client.Databases().UpdateDocument(ctx, g.databaseID, g.collectionID, userID, data)
	if err != nil {
		g.logger.Error("failed to update profile", "user_id", userID, "error", err)
		return nil, platformError("failed to update profile", err)
	}

	return doc, nil
}
