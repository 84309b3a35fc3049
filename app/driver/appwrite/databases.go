package appwrite

import (
	"context"

	"github.com/appwrite/sdk-for-go/databases"

	"beesides-api/app/domain"
)

// Databases is the platform's document store surface
type Databases struct {
	api *databases.Databases
}

// ListDocuments lists documents in a collection, optionally filtered by
// serialized queries
func (d *Databases) ListDocuments(ctx context.Context, databaseID, collectionID string, queries []string) (*domain.DocumentList, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var opts []databases.ListDocumentsOption
	if len(queries) > 0 {
		opts = append(opts, d.api.WithListDocumentsQueries(queries))
	}

	result, err := d.api.ListDocuments(databaseID, collectionID, opts...)
	if err != nil {
		return nil, platformError(err)
	}

	var list domain.DocumentList
	if err := decode(result, &list); err != nil {
		return nil, err
	}

	return &list, nil
}

// GetDocument fetches a single document
func (d *Databases) GetDocument(ctx context.Context, databaseID, collectionID, documentID string) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := d.api.GetDocument(databaseID, collectionID, documentID)
	if err != nil {
		return nil, platformError(err)
	}

	var doc domain.Document
	if err := decode(result, &doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// CreateDocument creates a document with the given id and payload
func (d *Databases) CreateDocument(ctx context.Context, databaseID, collectionID, documentID string, data map[string]interface{}) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := d.api.CreateDocument(databaseID, collectionID, documentID, data)
	if err != nil {
		return nil, platformError(err)
	}

	var doc domain.Document
	if err := decode(result, &doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// UpdateDocument applies a partial update to a document
func (d *Databases) UpdateDocument(ctx context.Context, databaseID, collectionID, documentID string, data map[string]interface{}) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := d.api.UpdateDocument(databaseID, collectionID, documentID,
		d.api.WithUpdateDocumentData(data))
	if err != nil {
		return nil, platformError(err)
	}

	var doc domain.Document
	if err := decode(result, &doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// DeleteDocument deletes a document
func (d *Databases) DeleteDocument(ctx context.Context, databaseID, collectionID, documentID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := d.api.DeleteDocument(databaseID, collectionID, documentID); err != nil {
		return platformError(err)
	}
	return nil
}
