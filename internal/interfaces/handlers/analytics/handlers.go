package analytics

import (
	analyticsvc "sitetrack-backend/internal/application/analytics"
	"sitetrack-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *analyticsvc.Service
}

// GET /api/v1/analytics/dashboard
func (h *Handlers) Dashboard(c *fiber.Ctx) error {
	return response.Success(c, "Dashboard fetched successfully", h.Service.Dashboard(c.Context()), nil)
}

// GET /api/v1/analytics/status
func (h *Handlers) Status(c *fiber.Ctx) error {
	return response.List(c, "Status breakdown fetched successfully", h.Service.Status(c.Context()), nil)
}

// GET /api/v1/analytics/on-time
func (h *Handlers) OnTime(c *fiber.Ctx) error {
	return response.Success(c, "On-time delivery fetched successfully", h.Service.OnTime(c.Context()), nil)
}

// GET /api/v1/analytics/monthly
func (h *Handlers) Monthly(c *fiber.Ctx) error {
	return response.List(c, "Monthly progress fetched successfully", h.Service.Monthly(c.Context()), nil)
}

// GET /api/v1/analytics/top?limit=n
func (h *Handlers) Top(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	if limit < 0 {
		return response.BadRequest(c, "limit must be positive")
	}
	limit = h.Service.TopLimit(limit)
	return response.List(c, "Top projects fetched successfully", h.Service.Top(c.Context(), limit), response.Meta{"limit": limit})
}

// GET /api/v1/analytics/value-increases
func (h *Handlers) ValueIncreases(c *fiber.Ctx) error {
	return response.List(c, "Value increases fetched successfully", h.Service.Increases(c.Context()), nil)
}
