package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fitforge/fitness-app/internal/domain"
	"fitforge/fitness-app/internal/repository"
)

// gormPlanRepository implements repository.PlanRepository on top of GORM.
type gormPlanRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new instance of gormPlanRepository.
func NewPlanRepository(db *gorm.DB) repository.PlanRepository {
	return &gormPlanRepository{db: db}
}

func (r *gormPlanRepository) Create(ctx context.Context, plan *domain.Plan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *gormPlanRepository) GetByID(ctx context.Context, id uint) (*domain.Plan, error) {
	var plan domain.Plan
	err := r.db.WithContext(ctx).First(&plan, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *gormPlanRepository) GetByUserID(ctx context.Context, userID uint) ([]domain.Plan, error) {
	var plans []domain.Plan
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *gormPlanRepository) Update(ctx context.Context, plan *domain.Plan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

func (r *gormPlanRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Plan{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *gormPlanRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Plan{}).Count(&count).Error
	return count, err
}
