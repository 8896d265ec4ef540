// Package alerts derives severity-ranked alerts from the visible projects.
// Alerts are recomputed on every call and never stored.
package alerts

import (
	"context"
	"sort"
	"time"

	"sitetrack-backend/internal/application/projects"
	"sitetrack-backend/internal/domain"
)

// Evaluate runs every rule over every project, in project order.
func Evaluate(ps []domain.Project, now time.Time) []domain.Alert {
	out := make([]domain.Alert, 0)
	for _, p := range ps {
		out = append(out, ForProject(p, now)...)
	}
	return out
}

// Sort orders by severity (critical first) then by days remaining ascending;
// alerts without a day count go last within their severity.
func Sort(as []domain.Alert) {
	sort.SliceStable(as, func(i, j int) bool {
		ri, rj := as[i].Severity.Rank(), as[j].Severity.Rank()
		if ri != rj {
			return ri < rj
		}
		di, dj := as[i].DaysRemaining, as[j].DaysRemaining
		switch {
		case di == nil:
			return false
		case dj == nil:
			return true
		}
		return *di < *dj
	})
}

type Group struct {
	Category domain.AlertCategory `json:"category"`
	Alerts   []domain.Alert       `json:"alerts"`
}

// GroupByCategory returns all five categories in fixed order, each sorted.
func GroupByCategory(as []domain.Alert) []Group {
	groups := make([]Group, len(domain.AlertCategories))
	pos := make(map[domain.AlertCategory]int, len(groups))
	for i, c := range domain.AlertCategories {
		groups[i] = Group{Category: c, Alerts: []domain.Alert{}}
		pos[c] = i
	}
	for _, a := range as {
		if i, ok := pos[a.Category]; ok {
			groups[i].Alerts = append(groups[i].Alerts, a)
		}
	}
	for i := range groups {
		Sort(groups[i].Alerts)
	}
	return groups
}

// Filter keeps alerts matching the given severity and category; empty matches all.
func Filter(as []domain.Alert, severity domain.AlertSeverity, category domain.AlertCategory) []domain.Alert {
	out := make([]domain.Alert, 0, len(as))
	for _, a := range as {
		if severity != "" && a.Severity != severity {
			continue
		}
		if category != "" && a.Category != category {
			continue
		}
		out = append(out, a)
	}
	return out
}

type Summary struct {
	Total      int                          `json:"total"`
	BySeverity map[domain.AlertSeverity]int `json:"bySeverity"`
	ByCategory map[domain.AlertCategory]int `json:"byCategory"`
}

func Summarize(as []domain.Alert) Summary {
	s := Summary{
		Total: len(as),
		BySeverity: map[domain.AlertSeverity]int{
			domain.SeverityCritical: 0,
			domain.SeverityWarning:  0,
			domain.SeverityInfo:     0,
		},
		ByCategory: make(map[domain.AlertCategory]int, len(domain.AlertCategories)),
	}
	for _, c := range domain.AlertCategories {
		s.ByCategory[c] = 0
	}
	for _, a := range as {
		s.BySeverity[a.Severity]++
		s.ByCategory[a.Category]++
	}
	return s
}

// Service evaluates alerts over the currently visible projects.
type Service struct {
	Projects *projects.Service
	Now      func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// All returns every alert, globally sorted.
func (s *Service) All(ctx context.Context) []domain.Alert {
	as := Evaluate(s.Projects.GetAll(ctx), s.now())
	Sort(as)
	return as
}

func (s *Service) Grouped(ctx context.Context) []Group {
	return GroupByCategory(Evaluate(s.Projects.GetAll(ctx), s.now()))
}

// ForJAN returns the sorted alerts of one visible project.
func (s *Service) ForJAN(ctx context.Context, jan int) ([]domain.Alert, bool) {
	p, ok := s.Projects.GetByJAN(ctx, jan)
	if !ok {
		return nil, false
	}
	as := ForProject(p, s.now())
	Sort(as)
	return as, true
}

func (s *Service) Summary(ctx context.Context) Summary {
	return Summarize(Evaluate(s.Projects.GetAll(ctx), s.now()))
}
