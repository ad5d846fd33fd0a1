package middleware

import (
	"time"

	"github.com/amitsingh771/Numerology/config"
	"github.com/amitsingh771/Numerology/internal/database"
	"github.com/amitsingh771/Numerology/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDLocal  = "requestID"
)

type Middleware struct {
	DB     database.DB
	Config config.Config
	log    logger.Logger
}

func New(db database.DB, config config.Config) Middleware {
	return Middleware{
		DB:     db,
		Config: config,
		log:    logger.New("middleware"),
	}
}

// RequestID tags each request with a v7 UUID, reusing one supplied by the
// caller.
func (m Middleware) RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			generated, err := uuid.NewV7()
			if err != nil {
				generated = uuid.New()
			}
			id = generated.String()
		}

		c.Locals(RequestIDLocal, id)
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}

func (m Middleware) RequestLogger() fiber.Handler {
	log := m.log.Function("RequestLogger")

	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		requestLog := log.With(
			"requestID", c.Locals(RequestIDLocal),
			"method", c.Method(),
			"path", c.Path(),
		)

		if status >= fiber.StatusInternalServerError {
			requestLog.ErMsg("Request failed", "status", status, "latency", time.Since(start).String())
		} else {
			requestLog.Info("Request handled", "status", status, "latency", time.Since(start).String())
		}

		return err
	}
}

// RateLimit limits requests per client IP. Counters live in valkey when a
// cache is configured and in process memory otherwise.
func (m Middleware) RateLimit() fiber.Handler {
	cfg := limiter.Config{
		Max:        m.Config.RateLimitMax,
		Expiration: time.Duration(m.Config.RateLimitWindowSeconds) * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).
				JSON(fiber.Map{"message": "error", "error": "rate limit exceeded"})
		},
	}

	if m.DB.Cache.Limiter != nil {
		cfg.Storage = database.NewLimiterStorage(m.DB.Cache.Limiter)
	}

	return limiter.New(cfg)
}
