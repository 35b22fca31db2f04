package domain

import "time"

// Upload stores metadata about a file uploaded by a user (progress photos,
// avatars). The actual object resides in S3; clients upload directly via a
// presigned URL.
type Upload struct {
	ID     uint `gorm:"primarykey" json:"id"`
	UserID uint `gorm:"index;not null" json:"userId"`

	FileName    string `gorm:"type:varchar(255)" json:"fileName"`     // original filename provided by the client
	ObjectKey   string `gorm:"type:varchar(512);not null" json:"-"`   // key in the S3 bucket - internal use
	URL         string `gorm:"type:text" json:"url,omitempty"`        // last issued download URL (presigned, short-lived)
	ContentType string `gorm:"type:varchar(100)" json:"contentType"`  // MIME type (e.g., "image/jpeg")
	Size        int64  `json:"size"`                                  // file size in bytes

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
