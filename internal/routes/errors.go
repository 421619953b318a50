package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders every failure as the {success:false, message}
// envelope the API speaks. Wire it into fiber.Config.ErrorHandler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
