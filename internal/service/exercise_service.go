package service

import (
	"context"
	"errors"

	"gorm.io/datatypes"

	"fitforge/fitness-app/internal/domain"
	"fitforge/fitness-app/internal/repository"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrValidationFailed = errors.New("exercise validation failed")
)

// ExerciseService manages the shared exercise library.
type ExerciseService interface {
	CreateExercise(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error)
	GetExerciseByID(ctx context.Context, id uint) (*domain.Exercise, error)
	ListExercises(ctx context.Context, muscle, difficulty string) ([]domain.Exercise, error)
	DeleteExercise(ctx context.Context, id uint) error
	SeedLibrary(ctx context.Context) (created int, err error)
}

type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{exerciseRepo: exerciseRepo}
}

func (s *exerciseService) CreateExercise(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error) {
	if exercise.Name == "" {
		return nil, ErrValidationFailed
	}
	if err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

func (s *exerciseService) GetExerciseByID(ctx context.Context, id uint) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

func (s *exerciseService) ListExercises(ctx context.Context, muscle, difficulty string) ([]domain.Exercise, error) {
	return s.exerciseRepo.List(ctx, muscle, difficulty)
}

func (s *exerciseService) DeleteExercise(ctx context.Context, id uint) error {
	err := s.exerciseRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrExerciseNotFound
	}
	return err
}

// seedExercises is the starter library inserted by POST /api/seed/exercises.
var seedExercises = []domain.Exercise{
	{Name: "Push-ups", PrimaryMuscle: "Chest", SecondaryMuscles: datatypes.JSON(`["Triceps","Shoulders"]`), Equipment: "bodyweight", Difficulty: "BEGINNER", Description: "Classic horizontal press.", Instructions: "Keep a straight line from head to heels, lower until the chest nearly touches the floor, press back up."},
	{Name: "Bodyweight Squats", PrimaryMuscle: "Quadriceps", SecondaryMuscles: datatypes.JSON(`["Glutes","Hamstrings"]`), Equipment: "bodyweight", Difficulty: "BEGINNER", Description: "Fundamental lower-body movement.", Instructions: "Feet shoulder width, sit back and down until thighs are parallel, drive through the heels."},
	{Name: "Lunges", PrimaryMuscle: "Quadriceps", SecondaryMuscles: datatypes.JSON(`["Glutes","Calves"]`), Equipment: "bodyweight", Difficulty: "BEGINNER", Description: "Single-leg strength and balance.", Instructions: "Step forward, lower the back knee toward the floor, push back to standing."},
	{Name: "Plank", PrimaryMuscle: "Core", SecondaryMuscles: datatypes.JSON(`["Shoulders"]`), Equipment: "bodyweight", Difficulty: "BEGINNER", Description: "Isometric core hold.", Instructions: "Forearms on the floor, body rigid, hold without letting the hips sag."},
	{Name: "Mountain Climbers", PrimaryMuscle: "Core", SecondaryMuscles: datatypes.JSON(`["Shoulders","Quadriceps"]`), Equipment: "bodyweight", Difficulty: "INTERMEDIATE", Description: "Dynamic core and conditioning drill.", Instructions: "From a high plank, drive knees toward the chest alternately at pace."},
	{Name: "Burpees", PrimaryMuscle: "Full Body", SecondaryMuscles: datatypes.JSON(`["Chest","Quadriceps","Core"]`), Equipment: "bodyweight", Difficulty: "INTERMEDIATE", Description: "Full-body conditioning movement.", Instructions: "Squat, kick back to a plank, push-up, jump the feet in, jump up."},
	{Name: "Pull-ups", PrimaryMuscle: "Back", SecondaryMuscles: datatypes.JSON(`["Biceps"]`), Equipment: "pull-up bar", Difficulty: "ADVANCED", Description: "Vertical pulling strength.", Instructions: "Hang from the bar, pull until the chin clears it, lower under control."},
	{Name: "Dumbbell Rows", PrimaryMuscle: "Back", SecondaryMuscles: datatypes.JSON(`["Biceps","Rear Delts"]`), Equipment: "dumbbell", Difficulty: "INTERMEDIATE", Description: "Unilateral horizontal pull.", Instructions: "Hinge at the hips, row the dumbbell to the ribcage, squeeze the shoulder blade."},
	{Name: "Goblet Squats", PrimaryMuscle: "Quadriceps", SecondaryMuscles: datatypes.JSON(`["Glutes","Core"]`), Equipment: "dumbbell", Difficulty: "INTERMEDIATE", Description: "Loaded squat pattern.", Instructions: "Hold a dumbbell at the chest, squat deep keeping the torso upright."},
	{Name: "Glute Bridges", PrimaryMuscle: "Glutes", SecondaryMuscles: datatypes.JSON(`["Hamstrings","Core"]`), Equipment: "bodyweight", Difficulty: "BEGINNER", Description: "Hip extension from the floor.", Instructions: "Lie on your back, feet flat, drive the hips up and squeeze at the top."},
}

// SeedLibrary inserts the starter exercises, skipping names that already
// exist, and reports how many rows were created.
func (s *exerciseService) SeedLibrary(ctx context.Context) (int, error) {
	created := 0
	for i := range seedExercises {
		ex := seedExercises[i]
		_, err := s.exerciseRepo.GetByName(ctx, ex.Name)
		if err == nil {
			continue // already seeded
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return created, err
		}
		if err := s.exerciseRepo.Create(ctx, &ex); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
