package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/gofiber/fiber/v2"

	"github.com/kesavpal/RESUMEWISE/internal/models"
	"github.com/kesavpal/RESUMEWISE/internal/services"
)

const missingAnalyzeInput = "Both resume text and requirements are required"

type AnalyzeHandler struct {
	analyzer  services.AnalyzerService
	validator *validator.Validate
}

func NewAnalyzeHandler(analyzer services.AnalyzerService) *AnalyzeHandler {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)

	return &AnalyzeHandler{
		analyzer:  analyzer,
		validator: v,
	}
}

// HandleAnalyze compares résumé text with job requirements and returns the
// structured analysis.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": missingAnalyzeInput,
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": missingAnalyzeInput,
		})
	}

	analysis, err := h.analyzer.AnalyzeStructured(c.UserContext(), req.ResumeText, req.Requirements)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(analysis)
}
