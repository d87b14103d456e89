package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hardiraiz/clone-gform-backend/database"
	"github.com/hardiraiz/clone-gform-backend/models"
	"github.com/hardiraiz/clone-gform-backend/notifications"
	"github.com/hardiraiz/clone-gform-backend/utils"
)

type InviteRequest struct {
	Email string `json:"email" validate:"required"`
}

func ListInvites(c *fiber.Ctx) error {
	userID := currentUserID(c)

	formID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "INVALID_FORM_ID"})
	}

	form, err := ownedForm(formID, userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": false, "message": "INVITES_NOT_FOUND"})
	}

	return c.JSON(fiber.Map{
		"status":  true,
		"message": "INVITE_FOUND",
		"invites": form.Invites,
	})
}

func AddInvite(c *fiber.Ctx) error {
	userID := currentUserID(c)

	formID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "INVALID_FORM_ID"})
	}

	var req InviteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "CANNOT_PARSE_JSON"})
	}
	if req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "REQUIRED_EMAIL"})
	}
	if !utils.IsEmailValid(req.Email) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "INVALID_EMAIL"})
	}

	var owner models.User
	if err := database.DB.First(&owner, "id = ?", userID).Error; err == nil && owner.Email == req.Email {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "CANT_INVITE_YOURSELF"})
	}

	form, err := ownedForm(formID, userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": false, "message": "FORM_NOT_FOUND"})
	}
	if form.Invited(req.Email) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "EMAIL_ALREADY_INVITED"})
	}

	form.Invites = append(form.Invites, req.Email)
	if err := database.DB.Save(form).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": false, "message": "INVITES_FAILED"})
	}

	go notifications.SendEmail(
		"",
		req.Email,
		fmt.Sprintf("You are invited to fill in \"%s\"", form.Title),
		fmt.Sprintf("<h1>%s</h1><p>%s invited you to fill in this form.</p>", form.Title, owner.FullName),
	)

	return c.JSON(fiber.Map{
		"status":  true,
		"message": "INVITE_SUCCESS",
		"email":   req.Email,
	})
}

func RemoveInvite(c *fiber.Ctx) error {
	userID := currentUserID(c)

	formID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "INVALID_FORM_ID"})
	}

	var req InviteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "CANNOT_PARSE_JSON"})
	}
	if req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "REQUIRED_EMAIL"})
	}

	form, err := ownedForm(formID, userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": false, "message": "FORM_NOT_FOUND"})
	}
	if !form.Invited(req.Email) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": false, "message": "EMAIL_NOT_FOUND"})
	}

	remaining := make([]string, 0, len(form.Invites))
	for _, invite := range form.Invites {
		if invite != req.Email {
			remaining = append(remaining, invite)
		}
	}
	form.Invites = remaining

	if err := database.DB.Save(form).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": false, "message": "REMOVE_INVITE_FAILED"})
	}

	return c.JSON(fiber.Map{
		"status":  true,
		"message": "REMOVE_INVITE_SUCCESS",
		"email":   req.Email,
	})
}
