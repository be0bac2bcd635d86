package middleware

import (
	"github.com/fund-portal/backend/internal/http/dto"
	"github.com/gofiber/fiber/v2"
)

// BodyLimitMiddleware rejects oversized bodies before any JSON parsing.
// Per the API contract this is a client error, not 413.
func BodyLimitMiddleware(maxBytes int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if len(c.Body()) > maxBytes {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: "Request body too large",
			})
		}
		return c.Next()
	}
}
