package model

import (
	"context"
	"io"
)

// MediaStore persists uploaded media and returns where it can be fetched from.
type MediaStore interface {
	UploadStream(ctx context.Context, key string, reader io.Reader, opts UploadOptions) (UploadResult, error)
}

// UploadOptions describe the object being uploaded. Size is -1 when unknown.
type UploadOptions struct {
	ContentType string
	Size        int64
}

// UploadResult describes a stored object.
type UploadResult struct {
	Key       string
	SecureURL string
}

// File is an uploaded file handle.
type File struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}
