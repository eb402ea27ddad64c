package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kesavpal/RESUMEWISE/internal/models"
)

func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{Status: "healthy"})
}
