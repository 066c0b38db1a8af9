package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/detektor-id/detektor-api/internal/dto"
	"github.com/detektor-id/detektor-api/internal/service"
	"github.com/detektor-id/detektor-api/internal/utils"
)

// DetectHandler serves the text analysis endpoints.
type DetectHandler struct {
	service service.DetectionService
	logger  zerolog.Logger
}

// NewDetectHandler constructs a detection handler.
func NewDetectHandler(service service.DetectionService, logger zerolog.Logger) *DetectHandler {
	return &DetectHandler{
		service: service,
		logger:  logger.With().Str("component", "detect_handler").Logger(),
	}
}

// Register wires the detection routes. The optional limiter guards the analysis
// endpoint only; the informational GET stays unthrottled.
func (h *DetectHandler) Register(router fiber.Router, limiter fiber.Handler) {
	router.Get("", h.info)
	if limiter != nil {
		router.Post("", limiter, h.detect)
	} else {
		router.Post("", h.detect)
	}
}

func (h *DetectHandler) info(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(dto.InfoResponse{
		Status:    "ok",
		Message:   "AI Detector API is running",
		Usage:     `POST /api/detect with {"text": "your text here"}`,
		Reference: "https://justdone.com/ai-detector",
	})
}

func (h *DetectHandler) detect(c *fiber.Ctx) error {
	var payload dto.DetectRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Invalid JSON format")
	}

	response, err := h.service.Analyze(c.Context(), payload)
	if err != nil {
		if errors.Is(err, service.ErrTextTooShort) {
			return utils.SendError(c, fiber.StatusBadRequest, "Text must be at least 50 characters long for accurate analysis")
		}
		h.logger.Error().Err(err).Msg("failed to analyze text")
		return utils.SendError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.Status(fiber.StatusOK).JSON(response)
}
