package domain

import (
	"time"

	"gorm.io/datatypes"
)

// PlanStatus type for plan lifecycle
type PlanStatus string

const (
	PlanStatusCreating  PlanStatus = "CREATING"
	PlanStatusActive    PlanStatus = "ACTIVE"
	PlanStatusPaused    PlanStatus = "PAUSED"
	PlanStatusCompleted PlanStatus = "COMPLETED"
)

// Plan represents a stored multi-week workout schedule, either AI-generated
// or produced by the deterministic template generator. The schedule body is
// kept as a JSON document (weeks -> days -> exercises) rather than normalized
// rows; the frontend consumes it verbatim.
type Plan struct {
	ID     uint `gorm:"primarykey" json:"id"`
	UserID uint `gorm:"index;not null" json:"userId"`

	Title            string     `gorm:"type:varchar(255);not null" json:"title"`
	Description      string     `gorm:"type:text" json:"description,omitempty"`
	Goal             string     `gorm:"type:varchar(100)" json:"goal,omitempty"`
	Level            string     `gorm:"type:varchar(50)" json:"level,omitempty"`
	FrequencyPerWeek int        `json:"frequencyPerWeek"`
	DurationWeeks    int        `json:"durationWeeks"`
	Status           PlanStatus `gorm:"type:varchar(20);default:'ACTIVE'" json:"status"`

	Body          datatypes.JSON `json:"body,omitempty"`
	GeneratedByAI bool           `gorm:"default:false" json:"generatedByAI"`
	Disclaimer    string         `gorm:"type:text" json:"disclaimer,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Workouts []WorkoutSession `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}
