package handlers

import (
	"github.com/fund-portal/backend/internal/http/dto"
	"github.com/fund-portal/backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: msg})
}

func conflict(c *fiber.Ctx, existing any) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{
		"error": "User already exists",
		"user":  existing,
	})
}

// internalError logs the underlying failure with the request id and returns
// a generic payload. Error detail stays server-side.
func internalError(c *fiber.Ctx, log *zap.Logger, op string, err error) error {
	reqID, _ := c.Locals(middleware.CtxRequestID).(string)
	log.Error("handler failure",
		zap.String("op", op),
		zap.String("request_id", reqID),
		zap.Error(err),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error:     "Internal server error",
		RequestID: reqID,
	})
}
