package handlers

import (
	"errors"
	"strconv"

	"github.com/amitsingh771/Numerology/internal/app"
	reportController "github.com/amitsingh771/Numerology/internal/controllers/report"
	"github.com/amitsingh771/Numerology/internal/logger"
	. "github.com/amitsingh771/Numerology/internal/models"
	"github.com/amitsingh771/Numerology/internal/numerology"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type ReportHandler struct {
	Handler
	controller *reportController.ReportController
}

type PreviewMessage struct {
	Dob string `json:"dob"`
}

func NewReportHandler(app app.App, router fiber.Router) *ReportHandler {
	log := logger.New("handlers").File("report_handler")
	return &ReportHandler{
		controller: app.ReportController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *ReportHandler) WithRouter(router fiber.Router) *ReportHandler {
	h.router = router
	return h
}

func (h *ReportHandler) Register() {
	reports := h.router.Group("/reports")
	reports.Get("/", h.getReport)
	reports.Post("/", h.createReport)

	h.router.Get("/numbers", h.getNumbers)
	h.router.Get("/profiles/:driver", h.getProfile)
	h.router.Get("/fortunes", h.listFortunes)
	h.router.Get("/fortunes/:driver/:conductor", h.getFortune)
}

func (h *ReportHandler) getReport(c *fiber.Ctx) error {
	log := h.log.Function("getReport")

	var request ReportRequest
	if err := c.QueryParser(&request); err != nil {
		log.Er("failed to parse report query", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "failed to parse report request"})
	}

	return h.generate(c, request)
}

func (h *ReportHandler) createReport(c *fiber.Ctx) error {
	log := h.log.Function("createReport")

	var request ReportRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse report body", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "failed to parse report request"})
	}

	return h.generate(c, request)
}

func (h *ReportHandler) generate(c *fiber.Ctx, request ReportRequest) error {
	log := h.log.Function("generate")

	report, err := h.controller.Generate(c.UserContext(), request)
	if err != nil {
		var missing *numerology.MissingFieldError
		if errors.As(err, &missing) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "error",
				"error":   "Missing required fields",
				"fields":  missing.Fields,
			})
		}

		log.Er("failed to generate report", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "error", "error": "failed to generate report"})
	}

	return c.JSON(fiber.Map{"message": "success", "report": report})
}

func (h *ReportHandler) getNumbers(c *fiber.Ctx) error {
	dob := c.Query("dob")
	if dob == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "dob is required"})
	}

	return c.JSON(fiber.Map{"message": "success", "preview": h.controller.Preview(dob)})
}

func (h *ReportHandler) getProfile(c *fiber.Ctx) error {
	driver, err := strconv.Atoi(c.Params("driver"))
	if err != nil || driver < 1 || driver > 9 {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "driver must be a number from 1 to 9"})
	}

	return c.JSON(fiber.Map{"message": "success", "profile": h.controller.Profile(driver)})
}

func (h *ReportHandler) listFortunes(c *fiber.Ctx) error {
	fortunes := h.controller.Fortunes()
	return c.JSON(fiber.Map{"message": "success", "count": len(fortunes), "fortunes": fortunes})
}

func (h *ReportHandler) getFortune(c *fiber.Ctx) error {
	driver, driverErr := strconv.Atoi(c.Params("driver"))
	conductor, conductorErr := strconv.Atoi(c.Params("conductor"))
	if driverErr != nil || conductorErr != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "driver and conductor must be numbers"})
	}

	fortune, ok := h.controller.Fortune(driver, conductor)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message":     "error",
			"error":       "combination fortune not found",
			"combination": CombinationKey(driver, conductor),
		})
	}

	return c.JSON(fiber.Map{"message": "success", "fortune": fortune})
}

// preview answers each {"dob": "..."} message with the numbers and profile it
// yields, so a form can show them while the date is typed.
func (h *ReportHandler) preview(c *websocket.Conn) {
	log := h.log.Function("preview")

	for {
		var message PreviewMessage
		if err := c.ReadJSON(&message); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Er("preview connection closed unexpectedly", err)
			}
			return
		}

		if err := c.WriteJSON(h.controller.Preview(message.Dob)); err != nil {
			log.Er("failed to write preview", err)
			return
		}
	}
}
