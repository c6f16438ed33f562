package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"stumpworks-site/internal/domain"
	"stumpworks-site/internal/middleware"
	"stumpworks-site/internal/service"
)

type MediaHandler struct {
	mediaService service.MediaService
}

func NewMediaHandler(mediaService service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// Upload accepts base64 payloads and pushes them to the asset host; the
// caller follows up with POST /api/portfolio to persist the record.
func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	var req domain.UploadRequest
	if err := c.BodyParser(&req); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	result, err := h.mediaService.Upload(c.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidUpload) {
			return middleware.BadRequest(err.Error())
		}
		return c.Status(fiber.StatusInternalServerError).JSON(middleware.ErrorResponse{
			Error:   "Upload failed",
			Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
