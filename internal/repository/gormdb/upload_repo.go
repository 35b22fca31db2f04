package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fitforge/fitness-app/internal/domain"
	"fitforge/fitness-app/internal/repository"
)

// gormUploadRepository implements repository.UploadRepository on top of GORM.
type gormUploadRepository struct {
	db *gorm.DB
}

// NewUploadRepository creates a new instance of gormUploadRepository.
func NewUploadRepository(db *gorm.DB) repository.UploadRepository {
	return &gormUploadRepository{db: db}
}

func (r *gormUploadRepository) Create(ctx context.Context, upload *domain.Upload) error {
	return r.db.WithContext(ctx).Create(upload).Error
}

func (r *gormUploadRepository) GetByID(ctx context.Context, id uint) (*domain.Upload, error) {
	var upload domain.Upload
	err := r.db.WithContext(ctx).First(&upload, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &upload, nil
}

func (r *gormUploadRepository) GetByUserID(ctx context.Context, userID uint) ([]domain.Upload, error) {
	var uploads []domain.Upload
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&uploads).Error
	if err != nil {
		return nil, err
	}
	return uploads, nil
}

func (r *gormUploadRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Upload{}).Count(&count).Error
	return count, err
}
