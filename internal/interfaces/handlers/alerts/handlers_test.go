package alerts

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	alertsvc "sitetrack-backend/internal/application/alerts"
	projsvc "sitetrack-backend/internal/application/projects"
	"sitetrack-backend/internal/domain"
	"sitetrack-backend/internal/infrastructure/kvstore"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.June, 15, 9, 0, 0, 0, time.Local)

func setupAlertsTest(t *testing.T) *fiber.App {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	docs := domain.DocumentLinks{LOALink: "https://docs.example.com/loa.pdf", AgreementLink: "https://docs.example.com/agr.pdf"}
	clean := domain.ComplianceInfo{HRClearance: "Cleared", PFESICStatus: "Registered"}
	ps := &projsvc.Service{
		Store: &kvstore.RedisStore{Rdb: rdb},
		Source: []domain.Project{
			// BG expires in 5 days: critical.
			{JAN: 10, WorkName: "Depot", Documents: docs, Compliance: clean,
				BankGuarantee: domain.BankGuarantee{Value: 250000, ExpiryDate: now.AddDate(0, 0, 5).Format("2006-01-02")}},
			// Policy expires in 45 days: warning.
			{JAN: 11, WorkName: "Canal", Documents: docs,
				Compliance: domain.ComplianceInfo{HRClearance: "Cleared", PFESICStatus: "Registered",
					PolicyExpiry: now.AddDate(0, 0, 45).Format("2006-01-02")}},
			// No documents: missing-docs.
			{JAN: 12, WorkName: "Bus stand", Compliance: clean},
		},
	}
	h := &Handlers{Service: &alertsvc.Service{Projects: ps, Now: func() time.Time { return now }}}

	app := fiber.New()
	app.Get("/alerts", h.List)
	app.Get("/alerts/summary", h.Summary)
	return app
}

func get(t *testing.T, app *fiber.App, path string, dst interface{}) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	if dst != nil && resp.StatusCode == fiber.StatusOK {
		require.NoError(t, json.Unmarshal(env.Data, dst))
	}
	return resp.StatusCode
}

func TestList_SortedAndFiltered(t *testing.T) {
	app := setupAlertsTest(t)

	var all []domain.Alert
	require.Equal(t, fiber.StatusOK, get(t, app, "/alerts", &all))
	require.NotEmpty(t, all)
	assert.Equal(t, domain.SeverityCritical, all[0].Severity)
	assert.Equal(t, 10, all[0].ProjectJAN)
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].Severity.Rank(), all[i].Severity.Rank())
	}

	var warnings []domain.Alert
	get(t, app, "/alerts?severity=warning&category=compliance", &warnings)
	require.Len(t, warnings, 1)
	assert.Equal(t, 11, warnings[0].ProjectJAN)
	assert.Equal(t, domain.CategoryCompliance, warnings[0].Category)

	var docs []domain.Alert
	get(t, app, "/alerts?category=missing-docs", &docs)
	require.NotEmpty(t, docs)
	for _, a := range docs {
		assert.Equal(t, 12, a.ProjectJAN)
	}

	assert.Equal(t, fiber.StatusBadRequest, get(t, app, "/alerts?severity=urgent", nil))
	assert.Equal(t, fiber.StatusBadRequest, get(t, app, "/alerts?category=weather", nil))
}

func TestList_Grouped(t *testing.T) {
	app := setupAlertsTest(t)
	var groups []alertsvc.Group
	get(t, app, "/alerts?grouped=true", &groups)
	require.Len(t, groups, len(domain.AlertCategories))
	for i, g := range groups {
		assert.Equal(t, domain.AlertCategories[i], g.Category)
	}
	assert.Len(t, groups[0].Alerts, 1)
}

func TestSummary(t *testing.T) {
	app := setupAlertsTest(t)
	var s alertsvc.Summary
	require.Equal(t, fiber.StatusOK, get(t, app, "/alerts/summary", &s))
	assert.Equal(t, 1, s.BySeverity[domain.SeverityCritical])
	assert.Equal(t, 1, s.ByCategory[domain.CategoryBankGuarantee])
	assert.Equal(t, 1, s.ByCategory[domain.CategoryCompliance])
	assert.Equal(t, 3, s.BySeverity[domain.SeverityWarning])
	assert.Equal(t, 2, s.ByCategory[domain.CategoryMissingDocs])
	assert.Equal(t, 4, s.Total)
}
