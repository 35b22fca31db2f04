package gormdb

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fitforge/fitness-app/internal/domain"
)

// Connect opens a Postgres connection and configures the pool.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true, // map driver errors to gorm.ErrDuplicatedKey etc.
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// AutoMigrate runs database migrations for all models. Child tables carry
// ON DELETE CASCADE foreign keys back to users, so deleting a user removes
// their plans, sessions, progress entries, uploads and jobs in one statement.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Exercise{},
		&domain.Plan{},
		&domain.WorkoutSession{},
		&domain.Progress{},
		&domain.Upload{},
		&domain.AiJob{},
	)
}
