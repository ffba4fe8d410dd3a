package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ZeltraX007/AkasaWingsBlog/internal/controllers"
)

func CommentRoutes(app *fiber.App, h *controllers.CommentHandler, requireAuth fiber.Handler) {
	comments := app.Group("/comments")

	comments.Get("/", h.List)
	comments.Post("/", requireAuth, h.Create)

	comments.Get("/mine", requireAuth, h.Mine)
	// GET /comments/post/:id lists the comments of one post, newest first
	comments.Get("/post/:id", h.ListByPost)
	comments.Patch("/:id", requireAuth, h.Update)
	comments.Delete("/:id", requireAuth, h.Delete)
}
