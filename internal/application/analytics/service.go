package analytics

import (
	"context"
	"time"

	"sitetrack-backend/internal/application/projects"
	"sitetrack-backend/internal/domain"
)

const (
	DefaultMonthlyWindow = 6
	DefaultTopN          = 5
)

// Dashboard bundles every aggregate the overview page draws.
type Dashboard struct {
	GeneratedAt    time.Time        `json:"generatedAt"`
	Totals         Totals           `json:"totals"`
	Status         []StatusBucket   `json:"status"`
	OnTime         OnTimeStats      `json:"onTime"`
	Monthly        []MonthPoint     `json:"monthly"`
	TopByValue     []domain.Project `json:"topByValue"`
	ValueIncreases []ValueIncrease  `json:"valueIncreases"`
	States         []StateBucket    `json:"states"`
}

// Service runs the aggregates over the currently visible projects.
type Service struct {
	Projects      *projects.Service
	Now           func() time.Time
	MonthlyWindow int
	TopN          int
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) monthlyWindow() int {
	if s.MonthlyWindow > 0 {
		return s.MonthlyWindow
	}
	return DefaultMonthlyWindow
}

// TopLimit returns n when positive, else the configured default.
func (s *Service) TopLimit(n int) int {
	if n > 0 {
		return n
	}
	if s.TopN > 0 {
		return s.TopN
	}
	return DefaultTopN
}

func (s *Service) Status(ctx context.Context) []StatusBucket {
	return StatusBreakdown(s.Projects.GetAll(ctx))
}

func (s *Service) OnTime(ctx context.Context) OnTimeStats {
	return OnTimeDelivery(s.Projects.GetAll(ctx), s.now())
}

func (s *Service) Monthly(ctx context.Context) []MonthPoint {
	return MonthlyProgress(s.Projects.GetAll(ctx), s.now(), s.monthlyWindow())
}

func (s *Service) Top(ctx context.Context, n int) []domain.Project {
	return TopByValue(s.Projects.GetAll(ctx), s.TopLimit(n))
}

func (s *Service) Increases(ctx context.Context) []ValueIncrease {
	return ValueIncreases(s.Projects.GetAll(ctx))
}

func (s *Service) Dashboard(ctx context.Context) Dashboard {
	ps := s.Projects.GetAll(ctx)
	now := s.now()
	return Dashboard{
		GeneratedAt:    now,
		Totals:         ComputeTotals(ps),
		Status:         StatusBreakdown(ps),
		OnTime:         OnTimeDelivery(ps, now),
		Monthly:        MonthlyProgress(ps, now, s.monthlyWindow()),
		TopByValue:     TopByValue(ps, s.TopLimit(0)),
		ValueIncreases: ValueIncreases(ps),
		States:         StateDistribution(ps),
	}
}
