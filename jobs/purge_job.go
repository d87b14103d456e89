package jobs

import (
	"log"
	"time"

	"github.com/hardiraiz/clone-gform-backend/database"
	"github.com/hardiraiz/clone-gform-backend/models"
	"gorm.io/gorm"
)

const purgeRetention = 30 * 24 * time.Hour

// PurgeDeletedForms permanently removes forms that were soft-deleted more
// than 30 days ago, together with their questions and answers.
func PurgeDeletedForms() {
	log.Println("Running job: PurgeDeletedForms...")

	cutoff := time.Now().Add(-purgeRetention)

	var forms []models.Form
	err := database.DB.Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Find(&forms).Error
	if err != nil {
		log.Printf("Error looking up purgeable forms: %v", err)
		return
	}

	if len(forms) == 0 {
		log.Println("No forms to purge.")
		return
	}

	for _, form := range forms {
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("form_id = ?", form.ID).Delete(&models.Answer{}).Error; err != nil {
				return err
			}
			if err := tx.Where("form_id = ?", form.ID).Delete(&models.Question{}).Error; err != nil {
				return err
			}
			return tx.Unscoped().Delete(&form).Error
		})
		if err != nil {
			log.Printf("Error purging form %s: %v", form.ID, err)
		}
	}

	log.Printf("Purged %d form(s).", len(forms))
}
