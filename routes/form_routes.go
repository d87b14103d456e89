package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hardiraiz/clone-gform-backend/handlers"
	"github.com/hardiraiz/clone-gform-backend/middleware"
)

func FormRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	forms := api.Group("/forms", middleware.Protected())
	forms.Get("", handlers.ListForms)
	forms.Post("", handlers.CreateForm)
	forms.Get("/:id", handlers.GetForm)
	forms.Put("/:id", handlers.UpdateForm)
	forms.Delete("/:id", handlers.DeleteForm)
	forms.Get("/:id/users", handlers.ShowFormToUser)

	questions := forms.Group("/:id/questions")
	questions.Get("", handlers.ListQuestions)
	questions.Post("", handlers.CreateQuestion)
	questions.Put("/:questionId", handlers.UpdateQuestion)
	questions.Delete("/:questionId", handlers.DeleteQuestion)

	options := questions.Group("/:questionId/options")
	options.Post("", handlers.AddOption)
	options.Put("/:optionId", handlers.UpdateOption)
	options.Delete("/:optionId", handlers.DeleteOption)

	invites := forms.Group("/:id/invites")
	invites.Get("", handlers.ListInvites)
	invites.Post("", handlers.AddInvite)
	invites.Delete("", handlers.RemoveInvite)
}
