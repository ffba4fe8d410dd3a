package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ZeltraX007/AkasaWingsBlog/internal/apperr"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/auth"
)

const (
	LocalUserID = "user_id"
	LocalViewer = "viewer"
	LocalClaims = "claims"
)

const msgAccessDenied = "Access denied!"

// RequireAuth resolves the bearer token to a user and stores it in Locals.
// Requests without a valid session stop here with 401.
func RequireAuth(authn *auth.Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := auth.BearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return apperr.Unauthorized(msgAccessDenied)
		}

		user, claims, err := authn.ResolveUser(c.Context(), token)
		if err != nil {
			if errors.Is(err, auth.ErrUnauthorized) {
				return apperr.Unauthorized(msgAccessDenied)
			}
			return apperr.Internal("Unable to check the session. Please try again later.", err)
		}

		c.Locals(LocalUserID, user.ID.Hex())
		c.Locals(LocalViewer, user)
		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}
