package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ZeltraX007/AkasaWingsBlog/internal/controllers"
)

func SetupRoutesUser(app *fiber.App, h *controllers.UserHandler, requireAuth fiber.Handler) {
	users := app.Group("/users")

	// curl -X POST http://127.0.0.1:5000/users/register -d 'name=Ana&email=ana@x.com&password=p1&confirmpassword=p1'
	users.Post("/register", h.Register)
	users.Post("/login", h.Login)
	users.Post("/logout", requireAuth, h.Logout)

	// checkuser and edit are declared before /:id so they are not taken for ids
	users.Get("/checkuser", h.CheckUser)
	users.Patch("/edit", requireAuth, h.Update)
	users.Get("/:id", h.GetByID)
}
