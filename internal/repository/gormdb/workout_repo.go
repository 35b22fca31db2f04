package gormdb

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"fitforge/fitness-app/internal/domain"
	"fitforge/fitness-app/internal/repository"
)

// gormWorkoutRepository implements repository.WorkoutRepository on top of GORM.
type gormWorkoutRepository struct {
	db *gorm.DB
}

// NewWorkoutRepository creates a new instance of gormWorkoutRepository.
func NewWorkoutRepository(db *gorm.DB) repository.WorkoutRepository {
	return &gormWorkoutRepository{db: db}
}

func (r *gormWorkoutRepository) Create(ctx context.Context, session *domain.WorkoutSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *gormWorkoutRepository) GetByID(ctx context.Context, id uint) (*domain.WorkoutSession, error) {
	var session domain.WorkoutSession
	err := r.db.WithContext(ctx).First(&session, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *gormWorkoutRepository) GetByUserID(ctx context.Context, userID uint) ([]domain.WorkoutSession, error) {
	var sessions []domain.WorkoutSession
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *gormWorkoutRepository) GetRecent(ctx context.Context, userID uint, limit int) ([]domain.WorkoutSession, error) {
	var sessions []domain.WorkoutSession
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *gormWorkoutRepository) CountSince(ctx context.Context, userID uint, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.WorkoutSession{}).
		Where("user_id = ? AND date >= ?", userID, since).
		Count(&count).Error
	return count, err
}

// Totals sums a user's lifetime session count, calories and minutes in one
// aggregate query.
func (r *gormWorkoutRepository) Totals(ctx context.Context, userID uint) (repository.WorkoutTotals, error) {
	var row struct {
		Sessions int64
		Calories int64
		Minutes  int64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.WorkoutSession{}).
		Select("COUNT(*) AS sessions, COALESCE(SUM(calories), 0) AS calories, COALESCE(SUM(duration_minutes), 0) AS minutes").
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return repository.WorkoutTotals{}, err
	}
	return repository.WorkoutTotals{
		Sessions: row.Sessions,
		Calories: row.Calories,
		Minutes:  row.Minutes,
	}, nil
}

func (r *gormWorkoutRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.WorkoutSession{}).Count(&count).Error
	return count, err
}
