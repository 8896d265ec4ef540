package projects

import (
	"strconv"
	"strings"

	alertsvc "sitetrack-backend/internal/application/alerts"
	projsvc "sitetrack-backend/internal/application/projects"
	"sitetrack-backend/internal/domain"
	"sitetrack-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type Handlers struct {
	Service *projsvc.Service
	Alerts  *alertsvc.Service
}

// parseJAN accepts 0, the JAN of unsaved draft rows.
func parseJAN(c *fiber.Ctx) (int, bool) {
	jan, err := strconv.Atoi(strings.TrimSpace(c.Params("jan")))
	if err != nil || jan < 0 {
		return 0, false
	}
	return jan, true
}

// GET /api/v1/projects?status=&state=&city=&fy=&q=&sort=value
func (h *Handlers) List(c *fiber.Ctx) error {
	f := projsvc.Filter{
		State:       c.Query("state"),
		City:        c.Query("city"),
		FY:          c.Query("fy"),
		Query:       c.Query("q"),
		SortByValue: c.Query("sort") == "value",
	}
	if raw := c.Query("status"); raw != "" {
		st, ok := domain.ParseCanonicalStatus(raw)
		if !ok {
			return response.BadRequest(c, "Invalid status filter: "+raw)
		}
		f.Status = st
	}
	ps := h.Service.Find(c.Context(), f)
	return response.List(c, "Projects fetched successfully", ps, response.Meta{
		"totalValue": h.Service.TotalContractValue(c.Context()),
	})
}

// GET /api/v1/projects/summary
func (h *Handlers) Summary(c *fiber.Ctx) error {
	return response.Success(c, "Project summary fetched successfully", h.Service.Summary(c.Context()), nil)
}

// GET /api/v1/projects/excluded
func (h *Handlers) Excluded(c *fiber.Ctx) error {
	return response.List(c, "Excluded projects fetched successfully", h.Service.ExcludedJANs(c.Context()), nil)
}

// GET /api/v1/projects/:jan
func (h *Handlers) Get(c *fiber.Ctx) error {
	jan, ok := parseJAN(c)
	if !ok {
		return response.BadRequest(c, "Invalid project JAN")
	}
	p, found := h.Service.GetByJAN(c.Context(), jan)
	if !found {
		return response.NotFound(c, projsvc.ErrProjectNotFound.Error())
	}
	return response.Success(c, "Project fetched successfully", p, nil)
}

// GET /api/v1/projects/:jan/alerts
func (h *Handlers) ListAlerts(c *fiber.Ctx) error {
	jan, ok := parseJAN(c)
	if !ok {
		return response.BadRequest(c, "Invalid project JAN")
	}
	as, found := h.Alerts.ForJAN(c.Context(), jan)
	if !found {
		return response.NotFound(c, projsvc.ErrProjectNotFound.Error())
	}
	return response.List(c, "Project alerts fetched successfully", as, response.Meta{"jan": jan})
}

// DELETE /api/v1/projects/:jan hides the project; a second delete is a 404.
func (h *Handlers) Delete(c *fiber.Ctx) error {
	jan, ok := parseJAN(c)
	if !ok {
		return response.BadRequest(c, "Invalid project JAN")
	}
	if _, found := h.Service.GetByJAN(c.Context(), jan); !found {
		return response.NotFound(c, projsvc.ErrProjectNotFound.Error())
	}
	deleted, err := h.Service.SoftDelete(c.Context(), jan)
	if err != nil {
		log.Error().Err(err).Int("jan", jan).Msg("projects: soft delete failed")
		return response.Internal(c)
	}
	if !deleted {
		return response.NotFound(c, projsvc.ErrProjectNotFound.Error())
	}
	return response.Success(c, "Project deleted successfully", fiber.Map{"jan": jan}, nil)
}

// POST /api/v1/projects/:jan/restore
func (h *Handlers) Restore(c *fiber.Ctx) error {
	jan, ok := parseJAN(c)
	if !ok {
		return response.BadRequest(c, "Invalid project JAN")
	}
	restored, err := h.Service.Restore(c.Context(), jan)
	if err != nil {
		log.Error().Err(err).Int("jan", jan).Msg("projects: restore failed")
		return response.Internal(c)
	}
	if !restored {
		return response.NotFound(c, "Project is not deleted")
	}
	p, _ := h.Service.GetByJAN(c.Context(), jan)
	return response.Success(c, "Project restored successfully", p, nil)
}
