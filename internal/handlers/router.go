package handlers

import (
	"github.com/amitsingh771/Numerology/internal/app"
	"github.com/amitsingh771/Numerology/internal/handlers/middleware"
	"github.com/amitsingh771/Numerology/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) (err error) {
	reportHandler := NewReportHandler(*app, router)
	setupWebSocketRoute(router, reportHandler)

	api := router.Group("/api", app.Middleware.RateLimit())
	HealthHandler(api, app)
	reportHandler.WithRouter(api).Register()

	return nil
}

func setupWebSocketRoute(router fiber.Router, h *ReportHandler) {
	router.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	router.Get("/ws/preview", websocket.New(h.preview))
}
