package analytics

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

func TestDashboard_SkipsSoftDeleted(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	big := project(1, "Completed", 9_000_000)
	big.Contract.ValueUpdated = 9_900_000
	small := project(2, "Work in Progress", 1_000_000)
	ps := &projects.Service{Store: &kvstore.RedisStore{Rdb: rdb}, Source: []domain.Project{big, small}}
	svc := &Service{Projects: ps, Now: func() time.Time { return today }}

	ctx := context.Background()
	d := svc.Dashboard(ctx)
	assert.Equal(t, 2, d.Totals.Projects)
	assert.Len(t, d.Monthly, DefaultMonthlyWindow)
	assert.Len(t, d.TopByValue, 2)
	assert.Len(t, d.ValueIncreases, 1)
	assert.Equal(t, today, d.GeneratedAt)

	_, err = ps.SoftDelete(ctx, 1)
	require.NoError(t, err)
	d = svc.Dashboard(ctx)
	assert.Equal(t, 1, d.Totals.Projects)
	assert.Equal(t, 1_000_000.0, d.Totals.ValueInternal)
	assert.Empty(t, d.ValueIncreases)
	assert.Equal(t, 1, svc.Status(ctx)[0].Count)
	assert.Len(t, svc.Top(ctx, 1), 1)
}

func TestTopLimit(t *testing.T) {
	s := &Service{}
	assert.Equal(t, DefaultTopN, s.TopLimit(0))
	assert.Equal(t, 3, s.TopLimit(3))
	s.TopN = 8
	assert.Equal(t, 8, s.TopLimit(-1))
}
