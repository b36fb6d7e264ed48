package entity

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyKey stores processed submissions so a retried request replays
// the first response instead of queueing a second job.
type IdempotencyKey struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Key          string    `gorm:"uniqueIndex:idx_idempotency_key_endpoint;size:255;not null"`
	Endpoint     string    `gorm:"uniqueIndex:idx_idempotency_key_endpoint;size:255;not null"` // e.g. "POST /api/v1/sales"
	ClientIP     string    `gorm:"size:64"`
	RequestHash  string    `gorm:"size:64"` // SHA256 of the request body
	ResponseCode int       `gorm:"not null"`
	ResponseBody string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	ExpiresAt    time.Time `gorm:"not null;index"`
}

// TableName returns the table name for IdempotencyKey
func (IdempotencyKey) TableName() string {
	return "idempotency_keys"
}

// IsExpired checks if the idempotency key has expired
func (i *IdempotencyKey) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}
