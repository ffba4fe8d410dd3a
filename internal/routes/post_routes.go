package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ZeltraX007/AkasaWingsBlog/internal/controllers"
)

func SetupRoutesPost(app *fiber.App, h *controllers.PostHandler, requireAuth fiber.Handler) {
	posts := app.Group("/posts")

	// GET /posts?tag=go
	posts.Get("/", h.List)
	posts.Post("/", requireAuth, h.Create)

	posts.Get("/mine", requireAuth, h.Mine)
	posts.Get("/:id", h.GetByID)
	posts.Patch("/:id", requireAuth, h.Update)
	posts.Delete("/:id", requireAuth, h.Delete)
}
