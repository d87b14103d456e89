package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hardiraiz/clone-gform-backend/models"
	"gorm.io/gorm"
)

// ErrSchemaChanged means the form's questions were modified between the
// schema fetch and the answer write, so the validated answer set may no
// longer line up with the form.
var ErrSchemaChanged = errors.New("form schema changed since fetch")

// GormAnswerStore writes accepted submissions to Postgres. The whole record
// batch goes in one transaction that first re-reads the form's schema
// version; either every record lands or none do.
type GormAnswerStore struct {
	db *gorm.DB
}

func NewGormAnswerStore(db *gorm.DB) *GormAnswerStore {
	return &GormAnswerStore{db: db}
}

func (s *GormAnswerStore) InsertAnswers(ctx context.Context, formID uuid.UUID, schemaVersion int, records []models.Answer) ([]models.Answer, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var form models.Form
		if err := tx.Select("schema_version").First(&form, "id = ?", formID).Error; err != nil {
			return err
		}
		if form.SchemaVersion != schemaVersion {
			return ErrSchemaChanged
		}
		if len(records) == 0 {
			return nil
		}
		return tx.Create(&records).Error
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
