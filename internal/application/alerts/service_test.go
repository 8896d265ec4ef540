package alerts

import (
	"context"
	"testing"
	"time"

	"sitetrack-backend/internal/application/projects"
	"sitetrack-backend/internal/domain"
	"sitetrack-backend/internal/infrastructure/kvstore"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func TestSort(t *testing.T) {
	as := []domain.Alert{
		{ID: "info-none", Severity: domain.SeverityInfo},
		{ID: "warn-none", Severity: domain.SeverityWarning},
		{ID: "crit-10", Severity: domain.SeverityCritical, DaysRemaining: intp(10)},
		{ID: "warn-40", Severity: domain.SeverityWarning, DaysRemaining: intp(40)},
		{ID: "crit-neg", Severity: domain.SeverityCritical, DaysRemaining: intp(-3)},
		{ID: "info-70", Severity: domain.SeverityInfo, DaysRemaining: intp(70)},
	}
	Sort(as)
	ids := make([]string, len(as))
	for i, a := range as {
		ids[i] = a.ID
	}
	assert.Equal(t, []string{"crit-neg", "crit-10", "warn-40", "warn-none", "info-70", "info-none"}, ids)
}

func TestGroupByCategory(t *testing.T) {
	as := []domain.Alert{
		{Category: domain.CategoryHRPF, Severity: domain.SeverityWarning},
		{Category: domain.CategoryBankGuarantee, Severity: domain.SeverityInfo, DaysRemaining: intp(80)},
		{Category: domain.CategoryBankGuarantee, Severity: domain.SeverityCritical, DaysRemaining: intp(2)},
	}
	groups := GroupByCategory(as)
	require.Len(t, groups, 5)
	assert.Equal(t, domain.CategoryBankGuarantee, groups[0].Category)
	assert.Equal(t, domain.SeverityCritical, groups[0].Alerts[0].Severity)
	assert.Empty(t, groups[1].Alerts)
	assert.NotNil(t, groups[1].Alerts)
	assert.Equal(t, domain.CategoryHRPF, groups[4].Category)
	assert.Len(t, groups[4].Alerts, 1)
}

func TestFilterAndSummarize(t *testing.T) {
	as := []domain.Alert{
		{Category: domain.CategoryHRPF, Severity: domain.SeverityWarning},
		{Category: domain.CategoryMissingDocs, Severity: domain.SeverityWarning},
		{Category: domain.CategoryDueDates, Severity: domain.SeverityCritical},
	}
	assert.Len(t, Filter(as, domain.SeverityWarning, ""), 2)
	assert.Len(t, Filter(as, domain.SeverityWarning, domain.CategoryHRPF), 1)
	assert.Len(t, Filter(as, "", ""), 3)

	s := Summarize(as)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.BySeverity[domain.SeverityWarning])
	assert.Equal(t, 0, s.BySeverity[domain.SeverityInfo])
	assert.Equal(t, 0, s.ByCategory[domain.CategoryBankGuarantee])
	assert.Equal(t, 1, s.ByCategory[domain.CategoryDueDates])
}

func TestService_VisibleProjectsOnly(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	a := cleanProject()
	a.BankGuarantee.ExpiryDate = day(5)
	b := cleanProject()
	b.JAN = 502
	b.Documents.LOALink = ""
	ps := &projects.Service{Store: &kvstore.RedisStore{Rdb: rdb}, Source: []domain.Project{a, b}}
	svc := &Service{Projects: ps, Now: func() time.Time { return now }}
	ctx := context.Background()

	all := svc.All(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, domain.SeverityCritical, all[0].Severity)

	got, ok := svc.ForJAN(ctx, 502)
	require.True(t, ok)
	assert.Len(t, got, 1)

	_, err = ps.SoftDelete(ctx, 501)
	require.NoError(t, err)
	assert.Equal(t, 1, svc.Summary(ctx).Total)
	_, ok = svc.ForJAN(ctx, 501)
	assert.False(t, ok)
	assert.Len(t, svc.Grouped(ctx)[3].Alerts, 1)
}
