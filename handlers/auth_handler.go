package handlers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	config "github.com/hardiraiz/clone-gform-backend/configs"
	"github.com/hardiraiz/clone-gform-backend/database"
	"github.com/hardiraiz/clone-gform-backend/models"
	"golang.org/x/crypto/bcrypt"
)

var validate = validator.New()

type RegisterRequest struct {
	FullName string `json:"fullname" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

func tokenDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(config.Config(key))
	if err != nil {
		return fallback
	}
	return d
}

func generateAccessToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(tokenDuration("JWT_ACCESS_TOKEN_EXPIRATION_TIME", 24*time.Hour)).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Config("JWT_ACCESS_TOKEN_SECRET")))
}

func generateRefreshToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(tokenDuration("JWT_REFRESH_TOKEN_EXPIRATION_TIME", 7*24*time.Hour)).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Config("JWT_REFRESH_TOKEN_SECRET")))
}

func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "CANNOT_PARSE_JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": err.Error()})
	}

	var count int64
	database.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"status": false, "message": "EMAIL_ALREADY_EXIST"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": false, "message": "USER_REGISTER_FAILED"})
	}

	user := models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: string(hashedPassword),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": false, "message": "USER_REGISTER_FAILED"})
	}

	accessToken, err := generateAccessToken(user.ID.String())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": false, "message": "TOKEN_GENERATION_FAILED"})
	}
	refreshToken, err := generateRefreshToken(user.ID.String())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": false, "message": "TOKEN_GENERATION_FAILED"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":       true,
		"message":      "USER_REGISTER_SUCCESS",
		"fullname":     user.FullName,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "CANNOT_PARSE_JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": err.Error()})
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": false, "message": "USER_NOT_FOUND"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "INVALID_PASSWORD"})
	}

	accessToken, err := generateAccessToken(user.ID.String())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": false, "message": "TOKEN_GENERATION_FAILED"})
	}
	refreshToken, err := generateRefreshToken(user.ID.String())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": false, "message": "TOKEN_GENERATION_FAILED"})
	}

	return c.JSON(fiber.Map{
		"status":       true,
		"message":      "USER_LOGIN_SUCCESS",
		"fullname":     user.FullName,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

func RefreshToken(c *fiber.Ctx) error {
	var req RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "CANNOT_PARSE_JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "REFRESH_TOKEN_IS_REQUIRED"})
	}

	token, err := jwt.Parse(req.RefreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(config.Config("JWT_REFRESH_TOKEN_SECRET")), nil
	})
	if err != nil {
		message := "INVALID_REFRESH_TOKEN"
		if vErr, ok := err.(*jwt.ValidationError); ok && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			message = "REFRESH_TOKEN_EXPIRED"
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": false, "message": message})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": false, "message": "INVALID_REFRESH_TOKEN"})
	}

	userID, _ := claims["user_id"].(string)
	accessToken, err := generateAccessToken(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": false, "message": "TOKEN_GENERATION_FAILED"})
	}
	refreshToken, err := generateRefreshToken(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": false, "message": "TOKEN_GENERATION_FAILED"})
	}

	return c.JSON(fiber.Map{
		"status":       true,
		"message":      "REFRESH_TOKEN_SUCCESS",
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}
