package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Exercise represents a single exercise definition in the shared library.
type Exercise struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	Instructions     string         `gorm:"type:text" json:"instructions,omitempty"`
	PrimaryMuscle    string         `gorm:"type:varchar(100)" json:"primaryMuscle,omitempty"`    // e.g., "Chest", "Legs", "Back"
	SecondaryMuscles datatypes.JSON `json:"secondaryMuscles,omitempty"`                          // list of muscle names
	Equipment        string         `gorm:"type:varchar(50)" json:"equipment,omitempty"`         // e.g., "bodyweight", "dumbbell", "barbell"
	Difficulty       string         `gorm:"type:varchar(50)" json:"difficulty,omitempty"`        // e.g., "BEGINNER", "INTERMEDIATE", "ADVANCED"
	VideoURL         string         `gorm:"type:text" json:"videoUrl,omitempty"`
	ImageURL         string         `gorm:"type:text" json:"imageUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
