package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Progress is a single body-progress entry (weight, body fat, measurements,
// optional photo).
type Progress struct {
	ID     uint `gorm:"primarykey" json:"id"`
	UserID uint `gorm:"index;not null" json:"userId"`

	Date         time.Time      `gorm:"index" json:"date"`
	WeightKG     float64        `json:"weightKg,omitempty"`
	BodyFatPct   float64        `json:"bodyFatPct,omitempty"`
	Measurements datatypes.JSON `json:"measurements,omitempty"` // e.g., {"chest": 102, "waist": 84}
	PhotoURL     string         `gorm:"type:text" json:"photoUrl,omitempty"`
	Notes        string         `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
