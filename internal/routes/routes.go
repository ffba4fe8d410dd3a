package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ZeltraX007/AkasaWingsBlog/internal/auth"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/controllers"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/middleware"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/services"
)

type Deps struct {
	Authn    *auth.Authenticator
	Users    *services.UserService
	Posts    *services.PostService
	Comments *services.CommentService
}

// Setup mounts the users, posts and comments APIs on app.
func Setup(app *fiber.App, d Deps) {
	requireAuth := middleware.RequireAuth(d.Authn)

	SetupRoutesUser(app, &controllers.UserHandler{Users: d.Users}, requireAuth)
	SetupRoutesPost(app, &controllers.PostHandler{Posts: d.Posts}, requireAuth)
	CommentRoutes(app, &controllers.CommentHandler{Comments: d.Comments}, requireAuth)
}
