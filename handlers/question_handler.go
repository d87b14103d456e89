package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hardiraiz/clone-gform-backend/database"
	"github.com/hardiraiz/clone-gform-backend/models"
	"gorm.io/gorm"
)

type UpdateQuestionRequest struct {
	QuestionText *string              `json:"question"`
	Type         *models.QuestionType `json:"type"`
	Required     *bool                `json:"required"`
}

func ownedForm(formID, userID uuid.UUID) (*models.Form, error) {
	var form models.Form
	if err := database.DB.First(&form, "id = ? AND user_id = ?", formID, userID).Error; err != nil {
		return nil, err
	}
	return &form, nil
}

// bumpSchemaVersion marks the form's question schema as changed so that
// in-flight submissions validated against the old schema are refused.
func bumpSchemaVersion(tx *gorm.DB, formID uuid.UUID) error {
	return tx.Model(&models.Form{}).
		Where("id = ?", formID).
		UpdateColumn("schema_version", gorm.Expr("schema_version + 1")).Error
}

func ListQuestions(c *fiber.Ctx) error {
	userID := currentUserID(c)

	formID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "INVALID_FORM_ID"})
	}
	if _, err := ownedForm(formID, userID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": false, "message": "FORM_NOT_FOUND"})
	}

	var questions []models.Question
	database.DB.Where("form_id = ?", formID).Order("created_at asc").Find(&questions)

	return c.JSON(fiber.Map{
		"status":    true,
		"message":   "FORM_FOUND",
		"questions": questions,
	})
}

func CreateQuestion(c *fiber.Ctx) error {
	userID := currentUserID(c)

	formID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "INVALID_FORM_ID"})
	}
	if _, err := ownedForm(formID, userID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": false, "message": "FORM_NOT_FOUND"})
	}

	question := models.Question{
		FormID:   formID,
		Type:     models.QuestionTypeText,
		Required: false,
		Options:  []models.Option{},
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		return bumpSchemaVersion(tx, formID)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": false, "message": "ADD_QUESTION_FAILED"})
	}

	return c.JSON(fiber.Map{
		"status":   true,
		"message":  "ADD_QUESTION_SUCCESS",
		"question": question,
	})
}

func UpdateQuestion(c *fiber.Ctx) error {
	userID := currentUserID(c)

	formID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "INVALID_FORM_ID"})
	}
	questionID, err := uuid.Parse(c.Params("questionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "INVALID_QUESTION_ID"})
	}
	if _, err := ownedForm(formID, userID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": false, "message": "FORM_NOT_FOUND"})
	}

	var req UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "CANNOT_PARSE_JSON"})
	}
	if req.Type != nil && !req.Type.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "INVALID_QUESTION_TYPE"})
	}

	var question models.Question
	if err := database.DB.First(&question, "id = ? AND form_id = ?", questionID, formID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": false, "message": "QUESTION_UPDATE_FAILED"})
	}

	if req.QuestionText != nil {
		question.QuestionText = req.QuestionText
	}
	if req.Required != nil {
		question.Required = *req.Required
	}
	if req.Type != nil {
		question.Type = *req.Type
		if !question.Type.HasOptions() {
			question.Options = []models.Option{}
		}
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&question).Error; err != nil {
			return err
		}
		return bumpSchemaVersion(tx, formID)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": false, "message": "QUESTION_UPDATE_FAILED"})
	}

	return c.JSON(fiber.Map{
		"status":   true,
		"message":  "QUESTION_UPDATE_SUCCESS",
		"question": question,
	})
}

func DeleteQuestion(c *fiber.Ctx) error {
	userID := currentUserID(c)

	formID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "INVALID_FORM_ID"})
	}
	questionID, err := uuid.Parse(c.Params("questionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "INVALID_QUESTION_ID"})
	}
	if _, err := ownedForm(formID, userID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": false, "message": "FORM_NOT_FOUND"})
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Question{}, "id = ? AND form_id = ?", questionID, formID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return bumpSchemaVersion(tx, formID)
	})
	if err == gorm.ErrRecordNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": false, "message": "DELETE_QUESTION_FAILED"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": false, "message": "DELETE_QUESTION_FAILED"})
	}

	return c.JSON(fiber.Map{
		"status":  true,
		"message": "DELETE_QUESTION_SUCCESS",
	})
}
