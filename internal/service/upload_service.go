package service

import (
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/google/uuid"

	"fitforge/fitness-app/internal/domain"
	"fitforge/fitness-app/internal/repository"
	"fitforge/fitness-app/internal/storage"
)

var ErrUploadNotFound = errors.New("upload not found")

// PresignedUpload is returned to the client, which PUTs the file body
// directly to UploadURL.
type PresignedUpload struct {
	Upload    *domain.Upload `json:"upload"`
	UploadURL string         `json:"uploadUrl"`
}

// UploadService manages upload metadata and presigned S3 URLs.
type UploadService interface {
	RequestUpload(ctx context.Context, userID uint, fileName, contentType string, size int64) (*PresignedUpload, error)
	GetUploadsByUser(ctx context.Context, userID uint) ([]domain.Upload, error)
}

type uploadService struct {
	uploadRepo  repository.UploadRepository
	fileStorage storage.FileStorage
}

// NewUploadService creates a new instance of uploadService.
func NewUploadService(uploadRepo repository.UploadRepository, fileStorage storage.FileStorage) UploadService {
	return &uploadService{
		uploadRepo:  uploadRepo,
		fileStorage: fileStorage,
	}
}

// RequestUpload records the metadata row and hands back a short-lived
// presigned PUT URL. The object key is namespaced per user; the uuid avoids
// collisions between same-named files.
func (s *uploadService) RequestUpload(ctx context.Context, userID uint, fileName, contentType string, size int64) (*PresignedUpload, error) {
	objectKey := fmt.Sprintf("uploads/%d/%s%s", userID, uuid.NewString(), path.Ext(fileName))

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, err
	}

	upload := &domain.Upload{
		UserID:      userID,
		FileName:    fileName,
		ObjectKey:   objectKey,
		ContentType: contentType,
		Size:        size,
	}
	if err := s.uploadRepo.Create(ctx, upload); err != nil {
		return nil, err
	}

	return &PresignedUpload{Upload: upload, UploadURL: uploadURL}, nil
}

// GetUploadsByUser returns the user's uploads with fresh download URLs.
func (s *uploadService) GetUploadsByUser(ctx context.Context, userID uint) ([]domain.Upload, error) {
	uploads, err := s.uploadRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range uploads {
		url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, uploads[i].ObjectKey, storage.DefaultPresignedURLExpiry)
		if err != nil {
			// A single bad object should not fail the listing.
			continue
		}
		uploads[i].URL = url
	}
	return uploads, nil
}
