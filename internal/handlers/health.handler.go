package handlers

import (
	"github.com/amitsingh771/Numerology/internal/app"

	"github.com/gofiber/fiber/v2"
)

func HealthHandler(router fiber.Router, app *app.App) {
	router.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":        "success",
			"status":         "ok",
			"version":        app.Config.GeneralVersion,
			"environment":    app.Config.Environment,
			"fortuneSource":  app.FortuneRepo.Source(),
			"fortuneRecords": app.ReportController.FortuneCount(),
		})
	})
}
