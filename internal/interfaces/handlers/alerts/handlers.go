package alerts

import (
	alertsvc "sitetrack-backend/internal/application/alerts"
	"sitetrack-backend/internal/domain"
	"sitetrack-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *alertsvc.Service
}

func validSeverity(s domain.AlertSeverity) bool {
	return s == domain.SeverityCritical || s == domain.SeverityWarning || s == domain.SeverityInfo
}

func validCategory(cat domain.AlertCategory) bool {
	for _, known := range domain.AlertCategories {
		if cat == known {
			return true
		}
	}
	return false
}

// GET /api/v1/alerts?severity=&category=&grouped=true
func (h *Handlers) List(c *fiber.Ctx) error {
	severity := domain.AlertSeverity(c.Query("severity"))
	category := domain.AlertCategory(c.Query("category"))
	if severity != "" && !validSeverity(severity) {
		return response.BadRequest(c, "Invalid severity: "+string(severity))
	}
	if category != "" && !validCategory(category) {
		return response.BadRequest(c, "Invalid category: "+string(category))
	}
	as := alertsvc.Filter(h.Service.All(c.Context()), severity, category)
	if c.QueryBool("grouped", false) {
		return response.List(c, "Alerts fetched successfully", alertsvc.GroupByCategory(as), response.Meta{"alerts": len(as)})
	}
	return response.List(c, "Alerts fetched successfully", as, nil)
}

// GET /api/v1/alerts/summary
func (h *Handlers) Summary(c *fiber.Ctx) error {
	return response.Success(c, "Alert summary fetched successfully", h.Service.Summary(c.Context()), nil)
}
