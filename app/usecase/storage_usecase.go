package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"beesides-api/app/domain"
	"beesides-api/app/port"
)

// StorageUseCase implements the file storage passthrough
type StorageUseCase struct {
	storage port.StorageGateway
	logger  *slog.Logger
}

// NewStorageUseCase creates a new StorageUseCase instance
func NewStorageUseCase(storage port.StorageGateway, logger *slog.Logger) *StorageUseCase {
	return &StorageUseCase{
		storage: storage,
		logger:  logger.With("component", "storage_usecase"),
	}
}

// GetFileWithURL fetches file metadata together with its download URL
func (uc *StorageUseCase) GetFileWithURL(ctx context.Context, bucketID, fileID string) (*domain.FileWithURL, error) {
	file, err := uc.storage.GetFile(ctx, bucketID, fileID)
	if err != nil {
		return nil, err
	}

	return &domain.FileWithURL{
		File: file,
		URL:  uc.storage.FileDownloadURL(bucketID, fileID),
	}, nil
}

// ListFiles lists files in a bucket
func (uc *StorageUseCase) ListFiles(ctx context.Context, bucketID string) (*domain.FileList, error) {
	return uc.storage.ListFiles(ctx, bucketID)
}

// PrepareUpload generates a file id and returns the upload descriptor. No
// file content passes through this layer: the caller performs the binary
// upload itself against the platform endpoint.
func (uc *StorageUseCase) PrepareUpload(ctx context.Context, bucketID string, req *domain.UploadRequest) (*domain.UploadTicket, error) {
	fileID := uuid.New().String()

	ticket := &domain.UploadTicket{
		FileID:      fileID,
		BucketID:    bucketID,
		Endpoint:    uc.storage.Endpoint(),
		UploadURL:   uc.storage.FileUploadURL(bucketID),
		ProjectID:   uc.storage.ProjectID(),
		Name:        req.Name,
		ContentType: req.ContentType,
	}

	uc.logger.Info("upload prepared", "bucket_id", bucketID, "file_id", fileID)
	return ticket, nil
}

// DeleteFile deletes a file
func (uc *StorageUseCase) DeleteFile(ctx context.Context, bucketID, fileID string) error {
	return uc.storage.DeleteFile(ctx, bucketID, fileID)
}
