package service

import (
	"context"
	"errors"
	"time"

	"fitforge/fitness-app/internal/domain"
	"fitforge/fitness-app/internal/repository"
)

var ErrWorkoutNotFound = errors.New("workout session not found")

const defaultRecentLimit = 5

// WorkoutService manages logged workout sessions.
type WorkoutService interface {
	LogWorkout(ctx context.Context, session *domain.WorkoutSession) (*domain.WorkoutSession, error)
	GetWorkoutByID(ctx context.Context, id uint) (*domain.WorkoutSession, error)
	GetWorkoutsByUser(ctx context.Context, userID uint) ([]domain.WorkoutSession, error)
	GetRecentWorkouts(ctx context.Context, userID uint, limit int) ([]domain.WorkoutSession, error)
}

type workoutService struct {
	workoutRepo repository.WorkoutRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{workoutRepo: workoutRepo}
}

func (s *workoutService) LogWorkout(ctx context.Context, session *domain.WorkoutSession) (*domain.WorkoutSession, error) {
	if session.Date.IsZero() {
		session.Date = time.Now().UTC()
	}
	if err := s.workoutRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *workoutService) GetWorkoutByID(ctx context.Context, id uint) (*domain.WorkoutSession, error) {
	session, err := s.workoutRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return session, nil
}

func (s *workoutService) GetWorkoutsByUser(ctx context.Context, userID uint) ([]domain.WorkoutSession, error) {
	return s.workoutRepo.GetByUserID(ctx, userID)
}

func (s *workoutService) GetRecentWorkouts(ctx context.Context, userID uint, limit int) ([]domain.WorkoutSession, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.workoutRepo.GetRecent(ctx, userID, limit)
}
