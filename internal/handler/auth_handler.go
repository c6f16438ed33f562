package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"stumpworks-site/internal/domain"
	"stumpworks-site/internal/middleware"
	"stumpworks-site/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input domain.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if input.Email == "" || input.Password == "" {
		return middleware.BadRequest("Email and password are required")
	}

	user, token, err := h.authService.Login(input)
	if err != nil {
		if errors.Is(err, service.ErrAuthNotConfigured) {
			return middleware.ServiceUnavailable("Authentication is not configured")
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			return middleware.Unauthorized("Invalid email or password")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// Logout exists for UI symmetry; tokens are stateless, so logging out is the
// client discarding its token.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Logged out successfully",
	})
}

func (h *AuthHandler) Check(c *fiber.Ctx) error {
	user := h.authService.Identify(c.Get("Authorization"))
	if user == nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"authenticated": false,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"authenticated": true,
		"user":          user,
	})
}
