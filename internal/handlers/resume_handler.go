package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kesavpal/RESUMEWISE/internal/models"
	"github.com/kesavpal/RESUMEWISE/internal/services"
)

type ResumeHandler struct {
	resumeService services.ResumeService
}

func NewResumeHandler(resumeService services.ResumeService) *ResumeHandler {
	return &ResumeHandler{
		resumeService: resumeService,
	}
}

// HandleUpload stores a PDF résumé, analyzes it and returns the feedback.
func (h *ResumeHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return respondError(c, services.ErrMissingFile)
	}

	result, err := h.resumeService.Upload(c.UserContext(), file)
	if err != nil {
		if errors.Is(err, services.ErrInvalidFileType) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Only PDF files are supported for analysis.",
			})
		}
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.UploadResponse{
		Message:  "Resume uploaded successfully!",
		Resume:   result.Resume,
		Feedback: result.Feedback,
		Report:   result.Report,
	})
}

func (h *ResumeHandler) HandleList(c *fiber.Ctx) error {
	resumes, err := h.resumeService.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(resumes)
}

func (h *ResumeHandler) HandleGet(c *fiber.Ctx) error {
	resume, err := h.resumeService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(resume)
}

func (h *ResumeHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.resumeService.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.MessageResponse{
		Message: "Resume deleted successfully!",
	})
}
