package service

import (
	"context"
	"errors"

	"fitforge/fitness-app/internal/domain"
	"fitforge/fitness-app/internal/repository"
	"fitforge/fitness-app/internal/storage"
)

// AdminStats holds per-table row counts for the admin dashboard.
type AdminStats struct {
	Users     int64 `json:"users"`
	Exercises int64 `json:"exercises"`
	Plans     int64 `json:"plans"`
	Workouts  int64 `json:"workouts"`
	Progress  int64 `json:"progress"`
	Uploads   int64 `json:"uploads"`
	AiJobs    int64 `json:"aiJobs"`
}

// AdminService backs the admin panel: stats, user listing, user removal.
type AdminService interface {
	Stats(ctx context.Context) (*AdminStats, error)
	ListUsers(ctx context.Context, offset, limit int) ([]domain.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type adminService struct {
	userRepo     repository.UserRepository
	exerciseRepo repository.ExerciseRepository
	planRepo     repository.PlanRepository
	workoutRepo  repository.WorkoutRepository
	progressRepo repository.ProgressRepository
	uploadRepo   repository.UploadRepository
	aiJobRepo    repository.AiJobRepository
	fileStorage  storage.FileStorage
}

// NewAdminService creates a new instance of adminService.
func NewAdminService(
	userRepo repository.UserRepository,
	exerciseRepo repository.ExerciseRepository,
	planRepo repository.PlanRepository,
	workoutRepo repository.WorkoutRepository,
	progressRepo repository.ProgressRepository,
	uploadRepo repository.UploadRepository,
	aiJobRepo repository.AiJobRepository,
	fileStorage storage.FileStorage,
) AdminService {
	return &adminService{
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
		planRepo:     planRepo,
		workoutRepo:  workoutRepo,
		progressRepo: progressRepo,
		uploadRepo:   uploadRepo,
		aiJobRepo:    aiJobRepo,
		fileStorage:  fileStorage,
	}
}

func (s *adminService) Stats(ctx context.Context) (*AdminStats, error) {
	stats := &AdminStats{}
	counts := []struct {
		dst   *int64
		count func(context.Context) (int64, error)
	}{
		{&stats.Users, s.userRepo.Count},
		{&stats.Exercises, s.exerciseRepo.Count},
		{&stats.Plans, s.planRepo.Count},
		{&stats.Workouts, s.workoutRepo.Count},
		{&stats.Progress, s.progressRepo.Count},
		{&stats.Uploads, s.uploadRepo.Count},
		{&stats.AiJobs, s.aiJobRepo.Count},
	}
	for _, c := range counts {
		n, err := c.count(ctx)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}
	return stats, nil
}

func (s *adminService) ListUsers(ctx context.Context, offset, limit int) ([]domain.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.userRepo.List(ctx, offset, limit)
}

// DeleteUser removes the account and, best-effort, the user's stored objects.
// Keys are collected before the FK cascade removes the upload rows.
func (s *adminService) DeleteUser(ctx context.Context, id uint) error {
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
