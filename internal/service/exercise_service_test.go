package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitforge/fitness-app/internal/domain"
	"fitforge/fitness-app/internal/repository/gormdb"
)

func TestSeedLibraryIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := gormdb.NewExerciseRepository(db)
	svc := NewExerciseService(repo)
	ctx := context.Background()

	created, err := svc.SeedLibrary(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(seedExercises), created)

	// Second run finds everything by name and inserts nothing.
	created, err = svc.SeedLibrary(ctx)
	require.NoError(t, err)
	assert.Zero(t, created)

	all, err := svc.ListExercises(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, len(seedExercises))
}

func TestCreateExerciseRequiresName(t *testing.T) {
	db := newTestDB(t)
	svc := NewExerciseService(gormdb.NewExerciseRepository(db))

	_, err := svc.CreateExercise(context.Background(), &domain.Exercise{Description: "nameless"})
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestDeleteExerciseNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewExerciseService(gormdb.NewExerciseRepository(db))

	err := svc.DeleteExercise(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrExerciseNotFound)
}
