package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"stumpworks-site/internal/service"
)

const UserEmailContextKey = "user_email"

// AuthRequired guards the admin write paths. The public read paths never go
// through here; /auth/check does its own non-failing inspection instead.
func AuthRequired(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error: "Authentication required",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error: "Invalid authorization header format",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error: "Invalid or expired token",
			})
		}

		c.Locals(UserEmailContextKey, claims.Email)

		return c.Next()
	}
}

func GetCurrentEmail(c *fiber.Ctx) string {
	email, ok := c.Locals(UserEmailContextKey).(string)
	if !ok {
		return ""
	}
	return email
}
