package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hardiraiz/clone-gform-backend/database"
	"github.com/hardiraiz/clone-gform-backend/models"
	"gorm.io/gorm"
)

type OptionRequest struct {
	Value string `json:"value" validate:"required"`
}

// choiceQuestion loads the question and refuses types that carry no option
// set (Text, Email).
func choiceQuestion(c *fiber.Ctx, userID uuid.UUID) (*models.Question, error) {
	formID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "INVALID_FORM_ID"})
	}
	questionID, err := uuid.Parse(c.Params("questionId"))
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "INVALID_QUESTION_ID"})
	}
	if _, err := ownedForm(formID, userID); err != nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": false, "message": "FORM_NOT_FOUND"})
	}

	var question models.Question
	if err := database.DB.First(&question, "id = ? AND form_id = ?", questionID, formID).Error; err != nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": false, "message": "QUESTION_NOT_FOUND"})
	}
	if !question.Type.HasOptions() {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "QUESTION_TYPE_HAS_NO_OPTIONS"})
	}
	return &question, nil
}

func saveQuestionOptions(question *models.Question) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(question).Error; err != nil {
			return err
		}
		return bumpSchemaVersion(tx, question.FormID)
	})
}

func AddOption(c *fiber.Ctx) error {
	userID := currentUserID(c)

	question, err := choiceQuestion(c, userID)
	if question == nil {
		return err
	}

	var req OptionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "CANNOT_PARSE_JSON"})
	}
	if err := validate.Struct(req); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "REQUIRED_OPTION_VALUE"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": err.Error()})
	}

	option := models.Option{ID: uuid.New(), Value: req.Value}
	question.Options = append(question.Options, option)

	if err := saveQuestionOptions(question); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": false, "message": "ADD_OPTION_FAILED"})
	}

	return c.JSON(fiber.Map{
		"status":  true,
		"message": "ADD_OPTION_SUCCESS",
		"option":  option,
	})
}

func UpdateOption(c *fiber.Ctx) error {
	userID := currentUserID(c)

	question, err := choiceQuestion(c, userID)
	if question == nil {
		return err
	}

	optionID, err := uuid.Parse(c.Params("optionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "INVALID_OPTION_ID"})
	}

	var req OptionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "CANNOT_PARSE_JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "REQUIRED_OPTION_VALUE"})
	}

	updated := false
	for i := range question.Options {
		if question.Options[i].ID == optionID {
			question.Options[i].Value = req.Value
			updated = true
			break
		}
	}
	if !updated {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": false, "message": "OPTION_NOT_FOUND"})
	}

	if err := saveQuestionOptions(question); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": false, "message": "UPDATE_OPTION_FAILED"})
	}

	return c.JSON(fiber.Map{
		"status":   true,
		"message":  "UPDATE_OPTION_SUCCESS",
		"question": question,
	})
}

func DeleteOption(c *fiber.Ctx) error {
	userID := currentUserID(c)

	question, err := choiceQuestion(c, userID)
	if question == nil {
		return err
	}

	optionID, err := uuid.Parse(c.Params("optionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "INVALID_OPTION_ID"})
	}

	remaining := question.Options[:0]
	found := false
	for _, option := range question.Options {
		if option.ID == optionID {
			found = true
			continue
		}
		remaining = append(remaining, option)
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": false, "message": "OPTION_NOT_FOUND"})
	}
	question.Options = remaining

	if err := saveQuestionOptions(question); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": false, "message": "DELETE_OPTION_FAILED"})
	}

	return c.JSON(fiber.Map{
		"status":   true,
		"message":  "DELETE_OPTION_SUCCESS",
		"question": question,
	})
}
