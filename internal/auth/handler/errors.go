package handler

import (
	"errors"

	"github.com/AnthoniusHendriyanto/chat-login/internal/logging"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// ErrorHandler turns handler errors into bare status responses. Internal
// details only reach the log.
func ErrorHandler(log logging.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		if code >= fiber.StatusInternalServerError {
			log.Error(c.UserContext(), "request failed", "method", c.Method(), "path", c.Path(), "error", err)
		}

		c.Type("txt", "utf-8")
		return c.Status(code).SendString(utils.StatusMessage(code))
	}
}
