package gateway

import (
	"context"
	"log/slog"

	"beesides-api/app/domain"
	"beesides-api/app/driver/appwrite"
)

// StorageGateway implements port.StorageGateway as a transparent
// passthrough to the platform's file storage
type StorageGateway struct {
	client *appwrite.Client
	logger *slog.Logger
}

// NewStorageGateway creates a new StorageGateway instance
func NewStorageGateway(client *appwrite.Client, logger *slog.Logger) *StorageGateway {
	return &StorageGateway{
		client: client,
		logger: logger.With("component", "storage_gateway"),
	}
}

// GetFile fetches file metadata
func (g *StorageGateway) GetFile(ctx context.Context, bucketID, fileID string) (*domain.File, error) {
	file, err := g.client.Storage().GetFile(ctx, bucketID, fileID)
	if err != nil {
		g.logger.Debug("failed to get file", "bucket_id", bucketID, "file_id", fileID, "error", err)
		return nil, platformError("failed to get file", err)
	}

	return file, nil
}

// ListFiles lists files in a bucket
func (g *StorageGateway) ListFiles(ctx context.Context, bucketID string) (*domain.FileList, error) {
	list, err := g.client.Storage().ListFiles(ctx, bucketID)
	if err != nil {
		g.logger.Error("failed to list files", "bucket_id", bucketID, "error", err)
		return nil, platformError("failed to list files", err)
	}

	return list, nil
}

// DeleteFile deletes a file
func (g *StorageGateway) DeleteFile(ctx context.Context, bucketID, fileID string) error {
	if err := g.client.Storage().DeleteFile(ctx, bucketID, fileID); err != nil {
		g.logger.Error("failed to delete file", "bucket_id", bucketID, "file_id", fileID, "error", err)
		return platformError("failed to delete file", err)
	}

	return nil
}

// FileDownloadURL returns the externally reachable download URL for a file
func (g *StorageGateway) FileDownloadURL(bucketID, fileID string) string {
	return g.client.Storage().FileDownloadURL(bucketID, fileID)
}

// FileUploadURL returns the externally reachable upload endpoint for a bucket
func (g *StorageGateway) FileUploadURL(bucketID string) string {
	return g.client.Storage().FileUploadURL(bucketID)
}

// Endpoint returns the platform base URL
func (g *StorageGateway) Endpoint() string {
	return g.client.Endpoint()
}

// ProjectID returns the configured project identifier
func (g *StorageGateway) ProjectID() string {
	return g.client.ProjectID()
}
