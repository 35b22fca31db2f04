package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fitforge/fitness-app/internal/domain"
	"fitforge/fitness-app/internal/repository"
)

// gormAiJobRepository implements repository.AiJobRepository on top of GORM.
type gormAiJobRepository struct {
	db *gorm.DB
}

// NewAiJobRepository creates a new instance of gormAiJobRepository.
func NewAiJobRepository(db *gorm.DB) repository.AiJobRepository {
	return &gormAiJobRepository{db: db}
}

func (r *gormAiJobRepository) Create(ctx context.Context, job *domain.AiJob) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *gormAiJobRepository) GetByID(ctx context.Context, id uint) (*domain.AiJob, error) {
	var job domain.AiJob
	err := r.db.WithContext(ctx).First(&job, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *gormAiJobRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.AiJob{}).Count(&count).Error
	return count, err
}
