package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"stumpworks-site/internal/repository"
)

type HealthHandler struct {
	repo repository.PortfolioRepository
}

func NewHealthHandler(repo repository.PortfolioRepository) *HealthHandler {
	return &HealthHandler{repo: repo}
}

// Check pings the backing store; some hosted stores pause when idle, so the
// probe doubles as a keep-alive.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	if err := h.repo.Ping(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Health check failed",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
