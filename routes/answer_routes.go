package routes

import (
	contribws "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/hardiraiz/clone-gform-backend/handlers"
	"github.com/hardiraiz/clone-gform-backend/middleware"
	"github.com/hardiraiz/clone-gform-backend/websocket"
)

func AnswerRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/answers/:formId", middleware.Protected(), handlers.SubmitAnswers)

	responses := api.Group("/responses", middleware.Protected())
	responses.Get("/:formId/lists", handlers.ListResponses)
	responses.Get("/:formId/summaries", handlers.SummarizeResponses)

	feed := api.Group("/ws/forms/:id/responses", middleware.Protected(), handlers.RequireFormOwner)
	feed.Use(func(c *fiber.Ctx) error {
		if !contribws.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	feed.Get("", contribws.New(websocket.ServeResponseFeed))
}
