package port

//go:generate mockgen -source=storage_port.go -destination=../mocks/mock_storage_port.go -package=mocks

import (
	"context"

	"beesides-api/app/domain"
)

// StorageUsecase defines file storage passthrough business logic
type StorageUsecase interface {
	GetFileWithURL(ctx context.Context, bucketID, fileID string) (*domain.FileWithURL, error)
	ListFiles(ctx context.Context, bucketID string) (*domain.FileList, error)

	// PrepareUpload returns an upload descriptor; the binary transfer is
	// the caller's responsibility against the platform endpoint
	PrepareUpload(ctx context.Context, bucketID string, req *domain.UploadRequest) (*domain.UploadTicket, error)

	DeleteFile(ctx context.Context, bucketID, fileID string) error
}

// StorageGateway defines the platform file storage surface
type StorageGateway interface {
	GetFile(ctx context.Context, bucketID, fileID string) (*domain.File, error)
	ListFiles(ctx context.Context, bucketID string) (*domain.FileList, error)
	DeleteFile(ctx context.Context, bucketID, fileID string) error
	FileDownloadURL(bucketID, fileID string) string
	FileUploadURL(bucketID string) string
	Endpoint() string
	ProjectID() string
}
