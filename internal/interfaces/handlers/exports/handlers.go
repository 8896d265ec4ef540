package exports

import (
	"bytes"
	"fmt"
	"time"

	alertsvc "sitetrack-backend/internal/application/alerts"
	"sitetrack-backend/internal/application/exports"
	projsvc "sitetrack-backend/internal/application/projects"
	"sitetrack-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type Handlers struct {
	Projects *projsvc.Service
	Alerts   *alertsvc.Service
	Now      func() time.Time
}

func (h *Handlers) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *Handlers) sendCSV(c *fiber.Ctx, prefix string, buf *bytes.Buffer) error {
	name := fmt.Sprintf("%s-%s.csv", prefix, h.now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, name))
	return c.Send(buf.Bytes())
}

// GET /api/v1/exports/projects.csv exports the visible projects, largest first.
func (h *Handlers) ProjectsCSV(c *fiber.Ctx) error {
	ps := h.Projects.Find(c.Context(), projsvc.Filter{SortByValue: true})
	var buf bytes.Buffer
	if err := exports.ProjectsCSV(&buf, ps); err != nil {
		log.Error().Err(err).Msg("exports: projects csv failed")
		return response.Internal(c)
	}
	return h.sendCSV(c, "projects", &buf)
}

// GET /api/v1/exports/alerts.csv
func (h *Handlers) AlertsCSV(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := exports.AlertsCSV(&buf, h.Alerts.All(c.Context())); err != nil {
		log.Error().Err(err).Msg("exports: alerts csv failed")
		return response.Internal(c)
	}
	return h.sendCSV(c, "alerts", &buf)
}
