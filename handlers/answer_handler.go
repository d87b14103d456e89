package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hardiraiz/clone-gform-backend/database"
	"github.com/hardiraiz/clone-gform-backend/models"
	"github.com/hardiraiz/clone-gform-backend/services"
	"github.com/hardiraiz/clone-gform-backend/websocket"
)

// SubmitAnswers runs an answer set through the validation pipeline and, on
// acceptance, persists one record per entry. All records share one
// submission id so responses can be read back grouped.
func SubmitAnswers(c *fiber.Ctx) error {
	userID := currentUserID(c)

	formID, err := uuid.Parse(c.Params("formId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "INVALID_FORM_ID"})
	}

	var entries []services.AnswerEntry
	if err := c.BodyParser(&entries); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "CANNOT_PARSE_JSON"})
	}

	var form models.Form
	if err := database.DB.Preload("Questions").First(&form, "id = ?", formID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": false, "message": "FORM_NOT_FOUND"})
	}

	if form.UserID != userID && !form.Public {
		var user models.User
		if err := database.DB.First(&user, "id = ?", userID).Error; err != nil || !form.Invited(user.Email) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": false, "message": "YOURE_NOT_INVITE"})
		}
	}

	service := services.NewSubmissionService(services.NewGormAnswerStore(database.DB))
	result, err := service.Submit(c.Context(), &form, entries, userID)
	if err != nil {
		if errors.Is(err, services.ErrSchemaChanged) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"status": false, "message": "FORM_SCHEMA_CHANGED"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": false, "message": "INSERT_ANSWERS_FAILED"})
	}

	if !result.Accepted {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  false,
			"message": string(result.Reason),
		})
	}

	websocket.BroadcastSubmission(form.ID, result.Records)

	return c.JSON(fiber.Map{
		"status":  true,
		"message": "SUCCESS",
		"records": result.Records,
	})
}
