package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/hardiraiz/clone-gform-backend/database"
	"github.com/hardiraiz/clone-gform-backend/models"
)

func currentUserID(c *fiber.Ctx) uuid.UUID {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))
	return userID
}

type UpdateFormRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Public      *bool     `json:"public"`
	Invites     *[]string `json:"invites"`
}

func ListForms(c *fiber.Ctx) error {
	userID := currentUserID(c)

	limit := c.QueryInt("limit", 10)
	page := c.QueryInt("page", 1)
	if limit < 1 {
		limit = 10
	}
	if page < 1 {
		page = 1
	}

	var total int64
	database.DB.Model(&models.Form{}).Where("user_id = ?", userID).Count(&total)

	var forms []models.Form
	err := database.DB.Where("user_id = ?", userID).
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&forms).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": false, "message": "FORMS_NOT_FOUND"})
	}
	if len(forms) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": false, "message": "FORMS_NOT_FOUND"})
	}

	return c.JSON(fiber.Map{
		"status":    true,
		"message":   "SUCCESS_GET_FORMS",
		"totalData": total,
		"page":      page,
		"limit":     limit,
		"forms":     forms,
	})
}

func CreateForm(c *fiber.Ctx) error {
	userID := currentUserID(c)

	form := models.Form{
		UserID: userID,
		Title:  "Untitled Form",
		Public: true,
	}
	if err := database.DB.Create(&form).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": false, "message": "FAILED_CREATE_FORM"})
	}

	return c.JSON(fiber.Map{
		"status":  true,
		"message": "SUCCESS_CREATE_FORM",
		"form":    form,
	})
}

func GetForm(c *fiber.Ctx) error {
	userID := currentUserID(c)

	formID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "INVALID_FORM_ID"})
	}

	var form models.Form
	if err := database.DB.Preload("Questions").First(&form, "id = ? AND user_id = ?", formID, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": false, "message": "FORM_NOT_FOUND"})
	}

	return c.JSON(fiber.Map{
		"status":  true,
		"message": "SUCCESS_GET_FORM",
		"form":    form,
	})
}

func UpdateForm(c *fiber.Ctx) error {
	userID := currentUserID(c)

	formID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "INVALID_FORM_ID"})
	}

	var req UpdateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "CANNOT_PARSE_JSON"})
	}

	var form models.Form
	if err := database.DB.First(&form, "id = ? AND user_id = ?", formID, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": false, "message": "FORM_UPDATE_FAILED"})
	}

	if req.Title != nil {
		form.Title = *req.Title
	}
	if req.Description != nil {
		form.Description = req.Description
	}
	if req.Public != nil {
		form.Public = *req.Public
	}
	if req.Invites != nil {
		form.Invites = *req.Invites
	}

	if err := database.DB.Save(&form).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": false, "message": "FORM_UPDATE_FAILED"})
	}

	return c.JSON(fiber.Map{
		"status":  true,
		"message": "SUCCESS_UPDATE_FORM",
		"form":    form,
	})
}

func DeleteForm(c *fiber.Ctx) error {
	userID := currentUserID(c)

	formID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "INVALID_FORM_ID"})
	}

	result := database.DB.Where("id = ? AND user_id = ?", formID, userID).Delete(&models.Form{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": false, "message": "FORM_DELETE_FAILED"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": false, "message": "FORM_DELETE_FAILED"})
	}

	return c.JSON(fiber.Map{
		"status":  true,
		"message": "SUCCESS_DELETE_FORM",
	})
}

// ShowFormToUser is the respondent view. Private forms are only visible to
// the owner and to invited emails, and the invite list itself is never
// exposed to respondents.
func ShowFormToUser(c *fiber.Ctx) error {
	userID := currentUserID(c)

	formID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "INVALID_FORM_ID"})
	}

	var form models.Form
	if err := database.DB.Preload("Questions").First(&form, "id = ?", formID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": false, "message": "FORM_NOT_FOUND"})
	}

	if form.UserID != userID && !form.Public {
		var user models.User
		if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": false, "message": "YOURE_NOT_INVITE"})
		}
		if !form.Invited(user.Email) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": false, "message": "YOURE_NOT_INVITE"})
		}
	}

	form.Invites = []string{}
	return c.JSON(fiber.Map{
		"status":  true,
		"message": "SUCCESS_GET_FORM",
		"form":    form,
	})
}
