package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hardiraiz/clone-gform-backend/handlers"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/register", handlers.Register)
	api.Post("/login", handlers.Login)
	api.Post("/refresh-token", handlers.RefreshToken)
}
