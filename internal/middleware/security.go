package middleware

import (
	"strings"

	"github.com/fund-portal/backend/internal/config"
	"github.com/gofiber/fiber/v2"
)

const allowedMethods = "GET, POST, PATCH, DELETE, OPTIONS"
const allowedHeaders = "Origin, Content-Type, Accept, X-Request-ID"

// SecurityHeadersMiddleware appends the fixed security-header set to every
// response and answers CORS for the configured origin allow-list. An Origin
// outside the list falls back to the first allow-list entry rather than
// echoing the caller.
func SecurityHeadersMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get(fiber.HeaderOrigin)
		allowOrigin := cfg.FallbackOrigin()
		if origin != "" && cfg.OriginAllowed(origin) {
			allowOrigin = origin
		}

		if allowOrigin != "" {
			c.Set(fiber.HeaderAccessControlAllowOrigin, allowOrigin)
		}
		c.Set(fiber.HeaderVary, fiber.HeaderOrigin)

		// Preflight is answered immediately, before rate limiting or
		// body handling.
		if c.Method() == fiber.MethodOptions {
			c.Set(fiber.HeaderAccessControlAllowMethods, allowedMethods)
			c.Set(fiber.HeaderAccessControlAllowHeaders, allowedHeaders)
			c.Set(fiber.HeaderAccessControlMaxAge, "86400")
			return c.SendStatus(fiber.StatusNoContent)
		}

		setSecurityHeaders(c)
		return c.Next()
	}
}

func setSecurityHeaders(c *fiber.Ctx) {
	c.Set("X-Content-Type-Options", "nosniff")
	c.Set("X-Frame-Options", "DENY")
	c.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
	c.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
	c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
	c.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
}

// ClientKey identifies the caller for rate limiting: the first component of
// X-Forwarded-For when present (the platform terminates TLS at a proxy),
// else the socket address, else a sentinel.
func ClientKey(c *fiber.Ctx) string {
	if xff := c.Get(fiber.HeaderXForwardedFor); xff != "" {
		if first := strings.TrimSpace(strings.Split(xff, ",")[0]); first != "" {
			return first
		}
	}
	if ip := c.IP(); ip != "" {
		return ip
	}
	return "unknown"
}
