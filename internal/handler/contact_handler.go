package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"stumpworks-site/internal/domain"
	"stumpworks-site/internal/middleware"
	"stumpworks-site/internal/service"
)

type ContactHandler struct {
	contactService service.ContactService
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) Send(c *fiber.Ctx) error {
	var input domain.ContactInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if err := h.contactService.Send(c.Context(), input); err != nil {
		if errors.Is(err, service.ErrInvalidContact) {
			return middleware.BadRequest(err.Error())
		}
		if errors.Is(err, service.ErrContactNotConfigured) {
			return middleware.ServiceUnavailable("Contact form is not configured")
		}
		return middleware.UpstreamFailure("Failed to send message")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Message sent successfully",
	})
}
