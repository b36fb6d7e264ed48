package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/fiscal-console/internal/domain/enum"
	"gorm.io/gorm"
)

// Submission is the local audit record of one attempt to queue a job.
type Submission struct {
	ID          uuid.UUID             `gorm:"type:uuid;primary_key" json:"id"`
	PrinterID   int64                 `gorm:"not null;index" json:"printer_id"`
	PayloadType enum.PayloadType      `gorm:"size:32;not null;index" json:"payload_type"`
	Payload     string                `gorm:"type:text" json:"payload"`
	Status      enum.SubmissionStatus `gorm:"not null" json:"status"`
	JobID       *int64                `gorm:"index" json:"job_id,omitempty"`
	Error       string                `gorm:"type:text" json:"error,omitempty"`
	RequestID   string                `gorm:"size:64" json:"request_id,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new submission
func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Submission model
func (Submission) TableName() string {
	return "submissions"
}
