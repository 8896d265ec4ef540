package projects

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"

	"sitetrack-backend/internal/domain"
	"sitetrack-backend/internal/infrastructure/kvstore"

	"github.com/rs/zerolog/log"
)

var ErrProjectNotFound = errors.New("Project not found")

// Service exposes the bulk project list minus the soft-deleted JANs.
// Source is never mutated; deletion only adds the JAN to the persisted exclusion set.
type Service struct {
	Store  kvstore.Store
	Source []domain.Project

	mu sync.Mutex
}

// Filter narrows GetAll. Zero fields do not filter.
type Filter struct {
	Status      domain.CanonicalStatus
	State       string
	City        string
	FY          string
	Query       string
	SortByValue bool
}

// Summary is the headline roll-up of the visible projects.
type Summary struct {
	Count              int     `json:"count"`
	TotalValueInternal float64 `json:"totalValueInternal"`
	TotalValueUpdated  float64 `json:"totalValueUpdated"`
	Excluded           int     `json:"excluded"`
}

func (s *Service) loadExcluded(ctx context.Context) []int {
	var jans []int
	kvstore.LoadJSON(ctx, s.Store, kvstore.KeyDeletedProjects, &jans)
	return jans
}

func excludedSet(jans []int) map[int]struct{} {
	set := make(map[int]struct{}, len(jans))
	for _, j := range jans {
		set[j] = struct{}{}
	}
	return set
}

// GetAll returns visible projects in source order.
func (s *Service) GetAll(ctx context.Context) []domain.Project {
	set := excludedSet(s.loadExcluded(ctx))
	out := make([]domain.Project, 0, len(s.Source))
	for _, p := range s.Source {
		if _, hidden := set[p.JAN]; hidden {
			continue
		}
		out = append(out, p)
	}
	return out
}

// GetByJAN finds a visible project. Excluded projects are reported as absent.
func (s *Service) GetByJAN(ctx context.Context, jan int) (domain.Project, bool) {
	for _, p := range s.GetAll(ctx) {
		if p.JAN == jan {
			return p, true
		}
	}
	return domain.Project{}, false
}

// SoftDelete hides jan. It returns false without error when jan was already hidden.
func (s *Service) SoftDelete(ctx context.Context, jan int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	jans := s.loadExcluded(ctx)
	for _, j := range jans {
		if j == jan {
			return false, nil
		}
	}
	jans = append(jans, jan)
	if err := kvstore.SaveJSON(ctx, s.Store, kvstore.KeyDeletedProjects, jans); err != nil {
		return false, err
	}
	log.Info().Int("jan", jan).Msg("projects: soft deleted")
	return true, nil
}

// Restore un-hides jan. It returns false when jan was not hidden.
func (s *Service) Restore(ctx context.Context, jan int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	jans := s.loadExcluded(ctx)
	kept := jans[:0]
	found := false
	for _, j := range jans {
		if j == jan {
			found = true
			continue
		}
		kept = append(kept, j)
	}
	if !found {
		return false, nil
	}
	if err := kvstore.SaveJSON(ctx, s.Store, kvstore.KeyDeletedProjects, kept); err != nil {
		return false, err
	}
	log.Info().Int("jan", jan).Msg("projects: restored")
	return true, nil
}

// ExcludedJANs returns the persisted exclusion set in insertion order.
func (s *Service) ExcludedJANs(ctx context.Context) []int {
	jans := s.loadExcluded(ctx)
	if jans == nil {
		return []int{}
	}
	return jans
}

// TotalContractValue sums the internal contract value of visible projects.
func (s *Service) TotalContractValue(ctx context.Context) float64 {
	var total float64
	for _, p := range s.GetAll(ctx) {
		total += p.Contract.ValueInternal
	}
	return total
}

// Summary totals the visible projects and counts the hidden ones.
func (s *Service) Summary(ctx context.Context) Summary {
	visible := s.GetAll(ctx)
	sum := Summary{Count: len(visible), Excluded: len(s.Source) - len(visible)}
	for _, p := range visible {
		sum.TotalValueInternal += p.Contract.ValueInternal
		sum.TotalValueUpdated += p.Contract.ValueUpdated
	}
	return sum
}

// Find returns the visible projects matching f.
func (s *Service) Find(ctx context.Context, f Filter) []domain.Project {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]domain.Project, 0)
	for _, p := range s.GetAll(ctx) {
		if f.Status != "" && p.CanonicalStatus() != f.Status {
			continue
		}
		if f.State != "" && !strings.EqualFold(p.State, f.State) {
			continue
		}
		if f.City != "" && !strings.EqualFold(p.City, f.City) {
			continue
		}
		if f.FY != "" && !strings.EqualFold(p.FY, f.FY) {
			continue
		}
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		out = append(out, p)
	}
	if f.SortByValue {
		SortByValue(out)
	}
	return out
}

func matchesQuery(p domain.Project, q string) bool {
	fields := []string{p.WorkName, p.Client.Name, p.City, p.State, p.Extra.EICName, p.Subcontractor.Name}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return strconv.Itoa(p.JAN) == q
}

// SortByValue orders by internal contract value, largest first. Ties keep source order.
func SortByValue(ps []domain.Project) {
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].Contract.ValueInternal > ps[j].Contract.ValueInternal
	})
}
