package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ZeltraX007/AkasaWingsBlog/internal/auth"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/models"
)

// Viewer returns the user set by RequireAuth, nil on public routes.
func Viewer(c *fiber.Ctx) *models.User {
	u, _ := c.Locals(LocalViewer).(*models.User)
	return u
}

func Claims(c *fiber.Ctx) *auth.Claims {
	cl, _ := c.Locals(LocalClaims).(*auth.Claims)
	return cl
}
