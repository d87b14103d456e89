package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Form struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	Title       string    `gorm:"size:255;not null;default:'Untitled Form'" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	Public      bool      `gorm:"not null;default:true" json:"public"`

	// Bumped inside every question/option mutation so the answer store can
	// detect a schema that changed between fetch and submit.
	SchemaVersion int `gorm:"not null;default:1" json:"schemaVersion"`

	Questions []Question `gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE" json:"questions"`
	Invites   []string   `gorm:"type:jsonb;serializer:json" json:"invites"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Invited reports whether the email is on the form's invite list.
func (f *Form) Invited(email string) bool {
	for _, invite := range f.Invites {
		if invite == email {
			return true
		}
	}
	return false
}
