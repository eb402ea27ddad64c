package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kesavpal/RESUMEWISE/internal/models"
	"github.com/kesavpal/RESUMEWISE/internal/services"
)

type ExtractHandler struct {
	resumeService services.ResumeService
}

func NewExtractHandler(resumeService services.ResumeService) *ExtractHandler {
	return &ExtractHandler{
		resumeService: resumeService,
	}
}

// HandleExtract returns the plain text of a PDF, DOC or DOCX upload. The
// upload is not kept.
func (h *ExtractHandler) HandleExtract(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return respondError(c, services.ErrMissingFile)
	}

	text, err := h.resumeService.ExtractText(file)
	if err != nil {
		if errors.Is(err, services.ErrInvalidFileType) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid file type. Only PDF, DOC, and DOCX files are allowed.",
			})
		}
		return respondError(c, err)
	}

	return c.JSON(models.ExtractResponse{Text: text})
}
