package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"stumpworks-site/internal/middleware"
	"stumpworks-site/internal/service"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) GetGoogle(c *fiber.Ctx) error {
	summary, err := h.reviewService.GetGoogleReviews(c.Context())
	if err != nil {
		if errors.Is(err, service.ErrReviewsNotConfigured) {
			return middleware.ServiceUnavailable("Google reviews are not configured")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(middleware.ErrorResponse{
			Error:   "Failed to fetch reviews",
			Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(summary)
}
