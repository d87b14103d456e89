package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequireFormOwner gates the live response feed: only the form's owner may
// subscribe. Runs after Protected(), before the websocket upgrade.
func RequireFormOwner(c *fiber.Ctx) error {
	userID := currentUserID(c)

	formID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "INVALID_FORM_ID"})
	}
	if _, err := ownedForm(formID, userID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": false, "message": "FORM_NOT_FOUND"})
	}

	return c.Next()
}
