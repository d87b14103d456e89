package models

import (
	"time"

	"github.com/google/uuid"
)

// Answer is one persisted (question, value) pair. A whole submission shares
// a SubmissionID; rows are append-only and never updated.
type Answer struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SubmissionID uuid.UUID `gorm:"type:uuid;not null;index" json:"submissionId"`
	FormID       uuid.UUID `gorm:"type:uuid;not null;index" json:"formId"`
	QuestionID   uuid.UUID `gorm:"type:uuid;not null" json:"questionId"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`

	SchemaVersion int         `gorm:"not null" json:"schemaVersion"`
	Value         AnswerValue `gorm:"type:jsonb;serializer:json" json:"value"`

	CreatedAt time.Time `json:"created_at"`
}
