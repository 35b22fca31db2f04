package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fitforge/fitness-app/internal/domain"
	"fitforge/fitness-app/internal/repository"
)

// gormExerciseRepository implements repository.ExerciseRepository on top of GORM.
type gormExerciseRepository struct {
	db *gorm.DB
}

// NewExerciseRepository creates a new instance of gormExerciseRepository.
func NewExerciseRepository(db *gorm.DB) repository.ExerciseRepository {
	return &gormExerciseRepository{db: db}
}

func (r *gormExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) error {
	return r.db.WithContext(ctx).Create(exercise).Error
}

func (r *gormExerciseRepository) GetByID(ctx context.Context, id uint) (*domain.Exercise, error) {
	var exercise domain.Exercise
	err := r.db.WithContext(ctx).First(&exercise, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

func (r *gormExerciseRepository) GetByName(ctx context.Context, name string) (*domain.Exercise, error) {
	var exercise domain.Exercise
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&exercise).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

// List returns the exercise library, optionally filtered by primary muscle
// and/or difficulty.
func (r *gormExerciseRepository) List(ctx context.Context, muscle, difficulty string) ([]domain.Exercise, error) {
	query := r.db.WithContext(ctx).Model(&domain.Exercise{})
	if muscle != "" {
		query = query.Where("primary_muscle = ?", muscle)
	}
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	var exercises []domain.Exercise
	if err := query.Order("name").Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (r *gormExerciseRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Exercise{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *gormExerciseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Exercise{}).Count(&count).Error
	return count, err
}
