package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

// CloudinaryStorageService implements StorageService on Cloudinary.
type CloudinaryStorageService struct {
	cld    *cloudinary.Cloudinary
	logger *zap.Logger
}

func NewStorageService(cld *cloudinary.Cloudinary, logger *zap.Logger) StorageService {
	return &CloudinaryStorageService{cld: cld, logger: logger}
}

// UploadImage uploads the image into destFolder and returns its secure URL.
func (s *CloudinaryStorageService) UploadImage(ctx context.Context, file Upload, destFolder string) (string, error) {
	uploadParams := uploader.UploadParams{
		Folder:       destFolder,
		ResourceType: "image",
	}
	result, err := s.cld.Upload.Upload(ctx, file.Body, uploadParams)
	if err != nil {
		return "", fmt.Errorf("CloudinaryStorageService: failed to upload %s: %w", file.Filename, err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("CloudinaryStorageService: upload %s rejected: %s", file.Filename, result.Error.Message)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("CloudinaryStorageService: no URL returned for %s", file.Filename)
	}
	s.logger.Debug("image uploaded", zap.String("publicId", result.PublicID))
	return result.SecureURL, nil
}

// DeleteFile deletes a file from Cloudinary given its public ID.
func (s *CloudinaryStorageService) DeleteFile(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("CloudinaryStorageService: failed to delete file: %w", err)
	}
	return nil
}
