package domain

// Document is an arbitrary platform record. This layer is a transparent
// pass-through and imposes no schema on document payloads.
type Document = map[string]interface{}

// DocumentList is the platform's paged document listing
type DocumentList struct {
	Total     int64      `json:"total"`
	Documents []Document `json:"documents"`
}

// File is a platform file object. Field names follow the platform's wire
// format so responses pass through unchanged.
type File struct {
	ID             string   `json:"$id"`
	BucketID       string   `json:"bucketId"`
	CreatedAt      string   `json:"$createdAt,omitempty"`
	UpdatedAt      string   `json:"$updatedAt,omitempty"`
	Name           string   `json:"name"`
	Signature      string   `json:"signature,omitempty"`
	MimeType       string   `json:"mimeType,omitempty"`
	SizeOriginal   int64    `json:"sizeOriginal"`
	ChunksTotal    int64    `json:"chunksTotal,omitempty"`
	ChunksUploaded int64    `json:"chunksUploaded,omitempty"`
	Permissions    []string `json:"$permissions,omitempty"`
}

// FileList is the platform's paged file listing
type FileList struct {
	Total int64  `json:"total"`
	Files []File `json:"files"`
}

// FileWithURL pairs file metadata with its download URL
type FileWithURL struct {
	File *File  `json:"file"`
	URL  string `json:"url"`
}

// UploadTicket describes where and how a caller should upload file content.
// No binary transfer happens in this layer: the caller uploads directly to
// the platform endpoint using these values.
type UploadTicket struct {
	FileID      string `json:"fileId"`
	BucketID    string `json:"bucketId"`
	Endpoint    string `json:"endpoint"`
	UploadURL   string `json:"uploadUrl"`
	ProjectID   string `json:"projectId"`
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
}

// UploadRequest is the prepare-upload input
type UploadRequest struct {
	Name        string `json:"name" validate:"required"`
	ContentType string `json:"contentType" validate:"required"`
}
