package gormdb

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fitforge/fitness-app/internal/domain"
	"fitforge/fitness-app/internal/repository"
)

// newTestDB opens an in-memory SQLite database with foreign keys enforced.
// A single connection keeps every query on the same in-memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, AutoMigrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *domain.User {
	t.Helper()
	user := &domain.User{
		Email:        email,
		PasswordHash: "x",
		Name:         "Test User",
		Role:         domain.RoleUser,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "dup@example.com")
	err := repo.Create(ctx, &domain.User{Email: "dup@example.com", PasswordHash: "y"})
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestUserRepositoryGetByEmailNotFound(t *testing.T) {
	db := newTestDB(t)
	_, err := NewUserRepository(db).GetByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepositoryUpdateLastLogin(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "login@example.com")
	stamp := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateLastLogin(ctx, user.ID, stamp))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastLoginAt)
	assert.True(t, got.LastLoginAt.Equal(stamp))

	assert.ErrorIs(t, repo.UpdateLastLogin(ctx, 99999, stamp), repository.ErrNotFound)
}

func TestDeleteUserCascadesToOwnedRows(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "bystander@example.com")

	planRepo := NewPlanRepository(db)
	plan := &domain.Plan{UserID: user.ID, Title: "Plan", Status: domain.PlanStatusActive}
	require.NoError(t, planRepo.Create(ctx, plan))

	workoutRepo := NewWorkoutRepository(db)
	require.NoError(t, workoutRepo.Create(ctx, &domain.WorkoutSession{
		UserID: user.ID, PlanID: &plan.ID, Date: time.Now().UTC(), DurationMinutes: 30, Completed: true,
	}))

	progressRepo := NewProgressRepository(db)
	require.NoError(t, progressRepo.Create(ctx, &domain.Progress{UserID: user.ID, Date: time.Now().UTC(), WeightKG: 80}))

	uploadRepo := NewUploadRepository(db)
	require.NoError(t, uploadRepo.Create(ctx, &domain.Upload{UserID: user.ID, FileName: "a.jpg", ObjectKey: "uploads/1/a.jpg"}))

	aiJobRepo := NewAiJobRepository(db)
	require.NoError(t, aiJobRepo.Create(ctx, &domain.AiJob{UserID: user.ID, Status: "PENDING"}))

	// Rows owned by another user must survive.
	otherPlan := &domain.Plan{UserID: other.ID, Title: "Keep", Status: domain.PlanStatusActive}
	require.NoError(t, planRepo.Create(ctx, otherPlan))

	require.NoError(t, NewUserRepository(db).Delete(ctx, user.ID))

	for table, want := range map[string]int64{
		"plans":            1, // the bystander's plan
		"workout_sessions": 0,
		"progresses":       0,
		"uploads":          0,
		"ai_jobs":          0,
	} {
		var count int64
		require.NoError(t, db.Table(table).Count(&count).Error)
		assert.Equal(t, want, count, "table %s", table)
	}
}

func TestWorkoutTotalsAndCountSince(t *testing.T) {
	db := newTestDB(t)
	repo := NewWorkoutRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "athlete@example.com")
	now := time.Now().UTC()

	sessions := []domain.WorkoutSession{
		{UserID: user.ID, Date: now.AddDate(0, 0, -10), DurationMinutes: 30, Calories: 200, Completed: true},
		{UserID: user.ID, Date: now.AddDate(0, 0, -1), DurationMinutes: 45, Calories: 350, Completed: true},
		{UserID: user.ID, Date: now, DurationMinutes: 25, Calories: 150, Completed: true},
	}
	for i := range sessions {
		require.NoError(t, repo.Create(ctx, &sessions[i]))
	}

	totals, err := repo.Totals(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), totals.Sessions)
	assert.Equal(t, int64(700), totals.Calories)
	assert.Equal(t, int64(100), totals.Minutes)

	count, err := repo.CountSince(ctx, user.ID, now.AddDate(0, 0, -2))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	recent, err := repo.GetRecent(ctx, user.ID, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.True(t, !recent[0].Date.Before(recent[1].Date), "recent sessions are newest first")
}

func TestProgressChartOldestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "progress@example.com")
	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &domain.Progress{
			UserID:   user.ID,
			Date:     base.AddDate(0, 0, 7*i),
			WeightKG: 82 - float64(i),
		}))
	}

	chart, err := repo.GetChart(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, chart, 3)
	assert.True(t, chart[0].Date.Before(chart[1].Date))
	assert.True(t, chart[1].Date.Before(chart[2].Date))
}

func TestAiJobRepositoryRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewAiJobRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "jobs@example.com")
	job := &domain.AiJob{UserID: user.ID, Status: "PENDING", Progress: 0}
	require.NoError(t, repo.Create(ctx, job))

	got, err := repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.UserID)
	assert.Equal(t, "PENDING", got.Status)

	_, err = repo.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestExerciseRepositoryListFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewExerciseRepository(db)
	ctx := context.Background()

	seed := []domain.Exercise{
		{Name: "Push-ups", PrimaryMuscle: "chest", Difficulty: "BEGINNER"},
		{Name: "Bench Press", PrimaryMuscle: "chest", Difficulty: "INTERMEDIATE"},
		{Name: "Bodyweight Squats", PrimaryMuscle: "legs", Difficulty: "BEGINNER"},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}

	chest, err := repo.List(ctx, "chest", "")
	require.NoError(t, err)
	assert.Len(t, chest, 2)

	beginnerChest, err := repo.List(ctx, "chest", "BEGINNER")
	require.NoError(t, err)
	require.Len(t, beginnerChest, 1)
	assert.Equal(t, "Push-ups", beginnerChest[0].Name)

	all, err := repo.List(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
