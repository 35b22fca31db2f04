package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"

	"fitforge/fitness-app/internal/domain"
	"fitforge/fitness-app/internal/repository"
	"fitforge/fitness-app/internal/storage"
)

var ErrUserNotFound = errors.New("user not found")

// ProfileUpdate carries the mutable profile fields; nil means "leave as is".
type ProfileUpdate struct {
	Name         *string
	HeightCM     *float64
	WeightKG     *float64
	Goal         *string
	FitnessLevel *string
	Equipment    datatypes.JSON
	Injuries     *string
}

// UserStats is the payload for GET /api/users/stats.
type UserStats struct {
	WorkoutsToday      int64   `json:"workoutsToday"`
	WorkoutsThisWeek   int64   `json:"workoutsThisWeek"`
	TotalWorkouts      int64   `json:"totalWorkouts"`
	TotalCalories      int64   `json:"totalCalories"`
	TotalMinutes       int64   `json:"totalMinutes"`
	Streak             int     `json:"streak"`
	AvgWorkoutsPerWeek float64 `json:"avgWorkoutsPerWeek"`
}

// UserService exposes profile reads/updates, account deletion and user stats.
type UserService interface {
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uint, update ProfileUpdate) (*domain.User, error)
	DeleteAccount(ctx context.Context, id uint) error
	Stats(ctx context.Context, id uint) (*UserStats, error)
}

type userService struct {
	userRepo    repository.UserRepository
	workoutRepo repository.WorkoutRepository
	uploadRepo  repository.UploadRepository
	fileStorage storage.FileStorage
}

// NewUserService creates a new instance of userService.
func NewUserService(
	userRepo repository.UserRepository,
	workoutRepo repository.WorkoutRepository,
	uploadRepo repository.UploadRepository,
	fileStorage storage.FileStorage,
) UserService {
	return &userService{
		userRepo:    userRepo,
		workoutRepo: workoutRepo,
		uploadRepo:  uploadRepo,
		fileStorage: fileStorage,
	}
}

func (s *userService) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id uint, update ProfileUpdate) (*domain.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.HeightCM != nil {
		user.HeightCM = *update.HeightCM
	}
	if update.WeightKG != nil {
		user.WeightKG = *update.WeightKG
	}
	if update.Goal != nil {
		user.Goal = *update.Goal
	}
	if update.FitnessLevel != nil {
		user.FitnessLevel = *update.FitnessLevel
	}
	if update.Equipment != nil {
		user.Equipment = update.Equipment
	}
	if update.Injuries != nil {
		user.Injuries = *update.Injuries
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount removes the user row; plans, sessions, progress, uploads and
// jobs go with it via the FK cascade. Stored objects are removed best-effort:
// the object keys are collected before the cascade wipes the metadata rows,
// and a storage failure leaves an orphaned object rather than a half-deleted
// account.
func (s *userService) DeleteAccount(ctx context.Context, id uint) error {
	uploads, err := s.uploadRepo.GetByUserID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	for _, upload := range uploads {
		_ = s.fileStorage.DeleteObject(ctx, upload.ObjectKey)
	}
	return nil
}

func (s *userService) Stats(ctx context.Context, id uint) (*UserStats, error) {
	now := time.Now().UTC()
	todayMidnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	// Week starts Monday.
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	weekStart := todayMidnight.AddDate(0, 0, -(weekday - 1))

	today, err := s.workoutRepo.CountSince(ctx, id, todayMidnight)
	if err != nil {
		return nil, err
	}
	thisWeek, err := s.workoutRepo.CountSince(ctx, id, weekStart)
	if err != nil {
		return nil, err
	}
	totals, err := s.workoutRepo.Totals(ctx, id)
	if err != nil {
		return nil, err
	}

	return &UserStats{
		WorkoutsToday:    today,
		WorkoutsThisWeek: thisWeek,
		TotalWorkouts:    totals.Sessions,
		TotalCalories:    totals.Calories,
		TotalMinutes:     totals.Minutes,
		// Streak and weekly average are not implemented yet.
		Streak:             0,
		AvgWorkoutsPerWeek: 0,
	}, nil
}
