package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/kesavpal/RESUMEWISE/internal/services"
)

// statusFor maps pipeline errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidFileType),
		errors.Is(err, services.ErrEmptyContent),
		errors.Is(err, services.ErrInvalidIDFormat),
		errors.Is(err, services.ErrMissingFile),
		errors.Is(err, services.ErrInvalidRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrFileTooLarge):
		return fiber.StatusRequestEntityTooLarge
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func messageFor(err error) string {
	for _, sentinel := range []error{
		services.ErrEmptyContent,
		services.ErrInvalidIDFormat,
		services.ErrNotFound,
		services.ErrMissingFile,
		services.ErrMalformedAnalysis,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	if errors.Is(err, services.ErrInvalidRequest) {
		return strings.TrimPrefix(err.Error(), services.ErrInvalidRequest.Error()+": ")
	}
	return err.Error()
}

func respondError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		log.Errorw("request failed", "path", c.Path(), "error", err)
	}

	return c.Status(status).JSON(fiber.Map{
		"error": messageFor(err),
	})
}

// ErrorHandler renders framework errors (body limit, unknown route, panics)
// in the same {"error": ...} shape as handler errors.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}
	if code == fiber.StatusRequestEntityTooLarge {
		message = "File too large"
	}

	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}
