package gormdb

import (
	"context"

	"gorm.io/gorm"

	"fitforge/fitness-app/internal/domain"
	"fitforge/fitness-app/internal/repository"
)

// gormProgressRepository implements repository.ProgressRepository on top of GORM.
type gormProgressRepository struct {
	db *gorm.DB
}

// NewProgressRepository creates a new instance of gormProgressRepository.
func NewProgressRepository(db *gorm.DB) repository.ProgressRepository {
	return &gormProgressRepository{db: db}
}

func (r *gormProgressRepository) Create(ctx context.Context, entry *domain.Progress) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *gormProgressRepository) GetByUserID(ctx context.Context, userID uint) ([]domain.Progress, error) {
	var entries []domain.Progress
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetChart returns entries oldest-first, which is the order charting clients
// expect.
func (r *gormProgressRepository) GetChart(ctx context.Context, userID uint) ([]domain.Progress, error) {
	var entries []domain.Progress
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *gormProgressRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Progress{}).Count(&count).Error
	return count, err
}
