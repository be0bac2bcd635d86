package http

import (
	"github.com/fund-portal/backend/internal/config"
	"github.com/fund-portal/backend/internal/http/dto"
	"github.com/fund-portal/backend/internal/http/handlers"
	"github.com/fund-portal/backend/internal/middleware"
	"github.com/fund-portal/backend/internal/ratelimit"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// NewApp builds the Fiber app with the cross-cutting policy applied: bodies
// above the configured ceiling and malformed routes/errors all come back as
// normalized JSON, with internal detail logged but never returned.
func NewApp(cfg *config.Config, log *zap.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		// The server-level cap is a backstop; the JSON 400 for oversized
		// bodies comes from BodyLimitMiddleware.
		BodyLimit:             cfg.BodyLimitBytes * 4,
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			switch code {
			case fiber.StatusRequestEntityTooLarge:
				// Oversized bodies are a client error here.
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Request body too large"})
			case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Not found"})
			default:
				if code >= fiber.StatusInternalServerError {
					log.Error("unhandled error", zap.Error(err), zap.String("path", c.Path()))
					return c.Status(code).JSON(dto.ErrorResponse{Error: "Internal server error"})
				}
				return c.Status(code).JSON(dto.ErrorResponse{Error: err.Error()})
			}
		},
	})
}

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	limiter ratelimit.Store,
	userHandler *handlers.UserHandler,
	portfolioHandler *handlers.PortfolioHandler,
) {
	app.Use(recover.New())
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.SecurityHeadersMiddleware(cfg))
	app.Use(middleware.BodyLimitMiddleware(cfg.BodyLimitBytes))
	app.Use(middleware.LoggerMiddleware(log))

	health := func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok"})
	}
	app.Get("/health", health)

	api := app.Group("/api")
	api.Get("/health", health)

	api.Use(middleware.RateLimitMiddleware(limiter, cfg.RateLimitRequests, cfg.RateLimitWindow, log))

	// User identity
	api.Post("/user/signup", userHandler.Signup)
	api.Post("/signup", userHandler.Signup)
	api.Post("/user/login", userHandler.Login)
	api.Post("/user", userHandler.Connect)
	api.Get("/users", userHandler.ListUsers)
	api.Get("/user/:address", userHandler.GetUser)
	api.Patch("/user/:address/name", userHandler.UpdateName)
	api.Patch("/user/:address/profile", userHandler.UpdateProfile)
	api.Delete("/user/:address", userHandler.DeleteUser)

	// Fund / portfolio reads
	api.Get("/fund/:id", portfolioHandler.GetFund)
	api.Get("/user-shares/:wallet", portfolioHandler.GetUserShares)
	api.Get("/fund-performance/:id", portfolioHandler.GetFundPerformance)
	api.Get("/portfolio-assets/:id", portfolioHandler.GetPortfolioAssets)
	api.Get("/transactions/:wallet", portfolioHandler.GetTransactions)
	api.Get("/fund-activities/:id", portfolioHandler.GetFundActivities)
	api.Get("/market-data", portfolioHandler.GetMarketData)
}
