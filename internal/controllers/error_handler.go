package controllers

import (
	"errors"
	"log/slog"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/ZeltraX007/AkasaWingsBlog/dto"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/apperr"
	"github.com/ZeltraX007/AkasaWingsBlog/internal/middleware"
)

// ErrorHandler writes every error as {"message": ...}. Causes of internal
// errors are logged and never sent to the client.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		if ae.Kind == apperr.KindInternal {
			logFailure(c, ae.Message, err)
		}
		return c.Status(ae.Status).JSON(dto.MessageResponse{Message: ae.Message})
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.MessageResponse{Message: fe.Message})
	}

	logFailure(c, "unhandled error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
		Message: "Something went wrong. Please try again later.",
	})
}

func logFailure(c *fiber.Ctx, msg string, err error) {
	uid, _ := c.Locals(middleware.LocalUserID).(string)
	slog.Error(msg,
		"err", err,
		"method", c.Method(),
		"path", c.Path(),
		"user_id", uid,
	)
}

// parseBody decodes JSON, urlencoded or multipart bodies into out. An empty
// body leaves out zeroed so field validation reports what is missing.
func parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return apperr.Validation("Invalid request body.")
	}
	return nil
}

// formImage returns the "image" file of a multipart request, nil when absent.
func formImage(c *fiber.Ctx) *multipart.FileHeader {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil
	}
	return fh
}
