package storage

import (
	"context"
	"io"
)

// Upload is one file received from a client.
type Upload struct {
	Filename string
	Body     io.Reader
}

// StorageService defines the interface for media storage operations.
type StorageService interface {
	// UploadImage stores an image and returns its public HTTPS URL.
	UploadImage(ctx context.Context, file Upload, destFolder string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
}
