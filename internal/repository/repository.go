package repository

import (
	"context"
	"time"

	"fitforge/fitness-app/internal/domain"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrConflict     = RepositoryError("conflict")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
}

// ExerciseRepository defines the interface for interacting with the exercise library.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) error
	GetByID(ctx context.Context, id uint) (*domain.Exercise, error)
	GetByName(ctx context.Context, name string) (*domain.Exercise, error)
	List(ctx context.Context, muscle, difficulty string) ([]domain.Exercise, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// PlanRepository defines the interface for interacting with workout plans.
type PlanRepository interface {
	Create(ctx context.Context, plan *domain.Plan) error
	GetByID(ctx context.Context, id uint) (*domain.Plan, error)
	GetByUserID(ctx context.Context, userID uint) ([]domain.Plan, error)
	Update(ctx context.Context, plan *domain.Plan) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// WorkoutTotals aggregates a user's lifetime workout numbers.
type WorkoutTotals struct {
	Sessions int64
	Calories int64
	Minutes  int64
}

// WorkoutRepository defines the interface for interacting with logged sessions.
type WorkoutRepository interface {
	Create(ctx context.Context, session *domain.WorkoutSession) error
	GetByID(ctx context.Context, id uint) (*domain.WorkoutSession, error)
	GetByUserID(ctx context.Context, userID uint) ([]domain.WorkoutSession, error)
	GetRecent(ctx context.Context, userID uint, limit int) ([]domain.WorkoutSession, error)
	CountSince(ctx context.Context, userID uint, since time.Time) (int64, error)
	Totals(ctx context.Context, userID uint) (WorkoutTotals, error)
	Count(ctx context.Context) (int64, error)
}

// ProgressRepository defines the interface for interacting with body-progress entries.
type ProgressRepository interface {
	Create(ctx context.Context, entry *domain.Progress) error
	GetByUserID(ctx context.Context, userID uint) ([]domain.Progress, error)
	GetChart(ctx context.Context, userID uint) ([]domain.Progress, error)
	Count(ctx context.Context) (int64, error)
}

// UploadRepository defines the interface for interacting with upload metadata.
type UploadRepository interface {
	Create(ctx context.Context, upload *domain.Upload) error
	GetByID(ctx context.Context, id uint) (*domain.Upload, error)
	GetByUserID(ctx context.Context, userID uint) ([]domain.Upload, error)
	Count(ctx context.Context) (int64, error)
}

// AiJobRepository defines the interface for the ai_jobs table. Generation runs
// synchronously today, so only the admin-stats count is exercised.
type AiJobRepository interface {
	Create(ctx context.Context, job *domain.AiJob) error
	GetByID(ctx context.Context, id uint) (*domain.AiJob, error)
	Count(ctx context.Context) (int64, error)
}
