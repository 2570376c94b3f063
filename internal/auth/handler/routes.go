package handler

import (
	"github.com/AnthoniusHendriyanto/chat-login/internal/logging"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func NewApp(log logging.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	return app
}

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Get("/", h.Index)
	app.Post("/login", h.Login)
	app.Get("/healthz", h.Health)
}
