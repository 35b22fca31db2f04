package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fitforge/fitness-app/internal/repository/gormdb"
)

// fakeStorage satisfies storage.FileStorage and records deleted object keys.
type fakeStorage struct {
	deleted []string
}

func (f *fakeStorage) GeneratePresignedUploadURL(_ context.Context, objectKey, _ string, _ time.Duration) (string, error) {
	return "https://storage.test/upload/" + objectKey, nil
}

func (f *fakeStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	return "https://storage.test/download/" + objectKey, nil
}

func (f *fakeStorage) DeleteObject(_ context.Context, objectKey string) error {
	f.deleted = append(f.deleted, objectKey)
	return nil
}

// newTestDB opens an in-memory SQLite database with foreign keys enforced,
// migrated to the full schema.
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

	require.NoError(t, gormdb.AutoMigrate(db))
	return db
}
