package middleware

import (
	"strings"

	"sitetrack-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CORSConfig allows the dashboard origin by suffix, plus any origin presenting
// the dev password header.
type CORSConfig struct {
	AllowedSuffix string
	DevPassword   string
}

const devPasswordHeader = "X-Dev-Password"

// CORS lets through requests without an Origin, localhost origins, origins
// ending with AllowedSuffix and requests carrying the dev password.
func CORS(cfg CORSConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get(fiber.HeaderOrigin)
		if origin == "" {
			return c.Next()
		}
		allowed := isLocalOrigin(origin) ||
			(cfg.AllowedSuffix != "" && strings.HasSuffix(strings.ToLower(origin), strings.ToLower(cfg.AllowedSuffix))) ||
			(cfg.DevPassword != "" && c.Get(devPasswordHeader) == cfg.DevPassword)
		if !allowed {
			return response.Error(c, "Not allowed by CORS", fiber.StatusForbidden, nil)
		}
		setCORSHeaders(c, origin)
		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	}
}

func isLocalOrigin(origin string) bool {
	return strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "http://127.0.0.1:")
}

func setCORSHeaders(c *fiber.Ctx, origin string) {
	c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
	c.Set(fiber.HeaderAccessControlAllowCredentials, "true")
	c.Set(fiber.HeaderAccessControlAllowMethods, "GET, POST, PATCH, DELETE, OPTIONS")
	c.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type, "+devPasswordHeader)
	c.Set(fiber.HeaderAccessControlExposeHeaders, "Content-Disposition, "+traceIDHeader)
}
