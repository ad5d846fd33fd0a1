package handlers

import (
	"errors"
	"time"

	"github.com/amitsingh771/Numerology/internal/app"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewServer builds the fiber application with global middleware and every
// route registered.
func NewServer(app *app.App) (*fiber.App, error) {
	timeout := time.Duration(app.Config.RequestTimeoutSeconds) * time.Second

	server := fiber.New(fiber.Config{
		AppName:      "numerology " + app.Config.GeneralVersion,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
		ErrorHandler: errorHandler,
	})

	server.Use(recover.New())
	server.Use(cors.New(cors.Config{AllowOrigins: app.Config.CorsAllowOrigins}))
	server.Use(app.Middleware.RequestID())
	server.Use(app.Middleware.RequestLogger())

	if err := Router(server, app); err != nil {
		return nil, err
	}

	return server, nil
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(code).JSON(fiber.Map{"message": "error", "error": message})
}
