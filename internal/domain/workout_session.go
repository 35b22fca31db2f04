package domain

import (
	"time"

	"gorm.io/datatypes"
)

// WorkoutSession represents one logged workout, optionally linked to the plan
// it was performed against.
type WorkoutSession struct {
	ID     uint  `gorm:"primarykey" json:"id"`
	UserID uint  `gorm:"index;not null" json:"userId"`
	PlanID *uint `gorm:"index" json:"planId,omitempty"` // nullable; freestyle workouts have no plan

	Date            time.Time      `gorm:"index" json:"date"`
	DurationMinutes int            `json:"durationMinutes"`
	ExerciseLog     datatypes.JSON `json:"exerciseLog,omitempty"` // per-exercise sets/reps/weights as logged
	Calories        int            `json:"calories"`
	Completed       bool           `gorm:"default:true" json:"completed"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
