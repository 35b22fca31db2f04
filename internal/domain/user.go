package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleUser  Role = "USER"
	RoleCoach Role = "COACH"
	RoleAdmin Role = "ADMIN"
)

// User represents an account in the system, together with the profile
// fields the plan generator feeds into its prompt.
type User struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"` // Never expose this via JSON
	Name         string `gorm:"type:varchar(255)" json:"name"`
	Role         Role   `gorm:"type:varchar(20);default:'USER'" json:"role"`

	// --- Profile ---
	HeightCM     float64        `json:"heightCm,omitempty"`
	WeightKG     float64        `json:"weightKg,omitempty"`
	Goal         string         `gorm:"type:varchar(100)" json:"goal,omitempty"`
	FitnessLevel string         `gorm:"type:varchar(50)" json:"fitnessLevel,omitempty"`
	Equipment    datatypes.JSON `json:"equipment,omitempty"` // list of equipment names
	Injuries     string         `gorm:"type:text" json:"injuries,omitempty"`

	Verified    bool       `gorm:"default:false" json:"verified"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	// Children are removed by FK cascade when the user row is deleted.
	Plans    []Plan           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Workouts []WorkoutSession `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Progress []Progress       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Uploads  []Upload         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	AiJobs   []AiJob          `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsCoach() bool {
	return u.Role == RoleCoach
}
