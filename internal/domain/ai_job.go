package domain

import "time"

// AiJob tracks an asynchronous plan-generation job. The table exists in the
// schema and is counted in admin stats, but plan generation currently runs
// synchronously inside the request, so no route creates or transitions rows
// here. TODO: drive this from /api/plans/generate once generation moves to a
// background worker.
type AiJob struct {
	ID     uint  `gorm:"primarykey" json:"id"`
	UserID uint  `gorm:"index;not null" json:"userId"`
	PlanID *uint `gorm:"index" json:"planId,omitempty"`

	Status   string `gorm:"type:varchar(50)" json:"status"` // e.g., "pending", "running", "done", "failed"
	Progress int    `json:"progress"`                       // 0..100
	Error    string `gorm:"type:text" json:"error,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
