package models

import (
	"time"

	"github.com/google/uuid"
)

type QuestionType string

const (
	QuestionTypeText     QuestionType = "Text"
	QuestionTypeRadio    QuestionType = "Radio"
	QuestionTypeCheckbox QuestionType = "Checkbox"
	QuestionTypeDropdown QuestionType = "Dropdown"
	QuestionTypeEmail    QuestionType = "Email"
)

var AllowedQuestionTypes = []QuestionType{
	QuestionTypeText,
	QuestionTypeRadio,
	QuestionTypeCheckbox,
	QuestionTypeDropdown,
	QuestionTypeEmail,
}

func (t QuestionType) Valid() bool {
	for _, allowed := range AllowedQuestionTypes {
		if t == allowed {
			return true
		}
	}
	return false
}

// HasOptions reports whether the type carries an option set. Only choice
// types do; Text and Email answers are free-form.
func (t QuestionType) HasOptions() bool {
	switch t {
	case QuestionTypeRadio, QuestionTypeCheckbox, QuestionTypeDropdown:
		return true
	}
	return false
}

// Option is one entry of a choice question's option set.
type Option struct {
	ID    uuid.UUID `json:"id"`
	Value string    `json:"value"`
}

type Question struct {
	ID           uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FormID       uuid.UUID    `gorm:"type:uuid;not null;index" json:"formId"`
	QuestionText *string      `gorm:"type:text" json:"question"`
	Type         QuestionType `gorm:"size:20;not null;default:'Text'" json:"type"`
	Required     bool         `gorm:"not null;default:false" json:"required"`
	Options      []Option     `gorm:"type:jsonb;serializer:json" json:"options"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
