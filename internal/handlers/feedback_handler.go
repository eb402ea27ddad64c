package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kesavpal/RESUMEWISE/internal/models"
	"github.com/kesavpal/RESUMEWISE/internal/services"
)

type FeedbackHandler struct{}

func NewFeedbackHandler() *FeedbackHandler {
	return &FeedbackHandler{}
}

// HandleParse splits evaluator feedback text into report sections.
func (h *FeedbackHandler) HandleParse(c *fiber.Ctx) error {
	var req models.ParseFeedbackRequest
	if err := c.BodyParser(&req); err != nil || req.Feedback == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "feedback is required",
		})
	}

	return c.JSON(services.ParseFeedback(req.Feedback))
}
