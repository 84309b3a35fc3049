package appwrite

import (
	"context"
	"fmt"
	"net/url"

	"github.com/appwrite/sdk-for-go/storage"

	"beesides-api/app/domain"
)

// Storage is the platform's file storage surface. Binary transfer never
// passes through this layer: uploads go directly from the caller to the
// platform endpoint described by an UploadTicket.
type Storage struct {
	client *Client
	api    *storage.Storage
}

func filesPath(bucketID string) string {
	return fmt.Sprintf("/storage/buckets/%s/files", url.PathEscape(bucketID))
}

// GetFile fetches file metadata
func (s *Storage) GetFile(ctx context.Context, bucketID, fileID string) (*domain.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := s.api.GetFile(bucketID, fileID)
	if err != nil {
		return nil, platformError(err)
	}

	var file domain.File
	if err := decode(result, &file); err != nil {
		return nil, err
	}

	return &file, nil
}

// ListFiles lists files in a bucket
func (s *Storage) ListFiles(ctx context.Context, bucketID string) (*domain.FileList, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := s.api.ListFiles(bucketID)
	if err != nil {
		return nil, platformError(err)
	}

	var list domain.FileList
	if err := decode(result, &list); err != nil {
		return nil, err
	}

	return &list, nil
}

// DeleteFile deletes a file
func (s *Storage) DeleteFile(ctx context.Context, bucketID, fileID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := s.api.DeleteFile(bucketID, fileID); err != nil {
		return platformError(err)
	}
	return nil
}

// FileDownloadURL returns the externally reachable download URL for a file
func (s *Storage) FileDownloadURL(bucketID, fileID string) string {
	return fmt.Sprintf("%s%s/%s/download?project=%s",
		s.client.endpoint, filesPath(bucketID), url.PathEscape(fileID),
		url.QueryEscape(s.client.projectID))
}

// FileUploadURL returns the externally reachable upload endpoint for a
// bucket. The caller performs the binary upload itself.
func (s *Storage) FileUploadURL(bucketID string) string {
	return s.client.endpoint + filesPath(bucketID)
}
