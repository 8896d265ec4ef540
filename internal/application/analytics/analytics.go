// Package analytics derives the dashboard aggregates from the visible projects.
// Every function is pure; nothing is cached between calls.
package analytics

import (
	"math"
	"sort"
	"strings"
	"time"

	"sitetrack-backend/internal/domain"
	"sitetrack-backend/internal/pkg/dates"
)

type StatusBucket struct {
	Status domain.CanonicalStatus `json:"status"`
	Count  int                    `json:"count"`
	Value  float64                `json:"value"`
}

// StatusBreakdown partitions by canonical status. All four statuses are always present.
func StatusBreakdown(ps []domain.Project) []StatusBucket {
	out := make([]StatusBucket, len(domain.CanonicalStatuses))
	pos := make(map[domain.CanonicalStatus]int, len(out))
	for i, s := range domain.CanonicalStatuses {
		out[i].Status = s
		pos[s] = i
	}
	for _, p := range ps {
		b := &out[pos[p.CanonicalStatus()]]
		b.Count++
		b.Value += p.Contract.ValueInternal
	}
	return out
}

type OnTimeStats struct {
	Completed int `json:"completed"`
	OnTime    int `json:"onTime"`
	Delayed   int `json:"delayed"`
	Percent   int `json:"percent"`
}

// ActualCompletion decides when a project actually finished, if it has.
// The latest completion date counts once it has passed or the status says
// completed; a completed project without one falls back to its original date
// when that has passed.
func ActualCompletion(p domain.Project, now time.Time) (time.Time, bool) {
	today := dates.Midnight(now)
	completed := p.CanonicalStatus() == domain.StatusCompleted
	if latest, ok := dates.Parse(p.Dates.LatestComplete); ok {
		if !latest.After(today) || completed {
			return latest, true
		}
		return time.Time{}, false
	}
	if completed {
		if orig, ok := dates.Parse(p.Dates.OriginalComplete); ok && !orig.After(today) {
			return orig, true
		}
	}
	return time.Time{}, false
}

// OnTimeDelivery only considers projects with a parseable original completion date.
func OnTimeDelivery(ps []domain.Project, now time.Time) OnTimeStats {
	var st OnTimeStats
	for _, p := range ps {
		orig, ok := dates.Parse(p.Dates.OriginalComplete)
		if !ok {
			continue
		}
		actual, ok := ActualCompletion(p, now)
		if !ok {
			continue
		}
		st.Completed++
		if !actual.After(orig) {
			st.OnTime++
		} else {
			st.Delayed++
		}
	}
	if st.Completed > 0 {
		st.Percent = int(math.Round(float64(st.OnTime) / float64(st.Completed) * 100))
	}
	return st
}

type MonthPoint struct {
	Month     string `json:"month"`
	Label     string `json:"label"`
	Completed int    `json:"completed"`
	Started   int    `json:"started"`
}

// MonthlyProgress covers the `months` calendar months ending with the current one,
// oldest first. Completions count canonical-completed projects by latest, else
// original, completion date; starts use the work start date, else the LOA date.
func MonthlyProgress(ps []domain.Project, now time.Time, months int) []MonthPoint {
	if months <= 0 {
		return []MonthPoint{}
	}
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)
	out := make([]MonthPoint, months)
	for i := range out {
		m := first.AddDate(0, i, 0)
		out[i] = MonthPoint{Month: m.Format("2006-01"), Label: m.Format("Jan 2006")}
	}
	slot := func(t time.Time) int {
		i := (t.Year()-first.Year())*12 + int(t.Month()) - int(first.Month())
		if i < 0 || i >= months {
			return -1
		}
		return i
	}
	for _, p := range ps {
		if p.CanonicalStatus() == domain.StatusCompleted {
			if t, ok := firstDate(p.Dates.LatestComplete, p.Dates.OriginalComplete); ok {
				if i := slot(t); i >= 0 {
					out[i].Completed++
				}
			}
		}
		if t, ok := firstDate(p.Dates.WorkStart, p.Dates.LOA); ok {
			if i := slot(t); i >= 0 {
				out[i].Started++
			}
		}
	}
	return out
}

func firstDate(candidates ...string) (time.Time, bool) {
	for _, c := range candidates {
		if t, ok := dates.Parse(c); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// TopByValue returns the n largest projects by internal value without reordering ps.
func TopByValue(ps []domain.Project, n int) []domain.Project {
	sorted := append([]domain.Project(nil), ps...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Contract.ValueInternal > sorted[j].Contract.ValueInternal
	})
	if n < 0 {
		n = 0
	}
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

type ValueIncrease struct {
	JAN           int     `json:"jan"`
	WorkName      string  `json:"workName"`
	ValueInternal float64 `json:"valueInternal"`
	ValueUpdated  float64 `json:"valueUpdated"`
	Increase      float64 `json:"increase"`
	Percent       float64 `json:"percent"`
}

// ValueIncreases lists projects whose updated value exceeds the internal one,
// largest increase first. Percent is 0 when the internal value is 0.
func ValueIncreases(ps []domain.Project) []ValueIncrease {
	out := make([]ValueIncrease, 0)
	for _, p := range ps {
		c := p.Contract
		if c.ValueUpdated <= c.ValueInternal {
			continue
		}
		vi := ValueIncrease{
			JAN:           p.JAN,
			WorkName:      p.WorkName,
			ValueInternal: c.ValueInternal,
			ValueUpdated:  c.ValueUpdated,
			Increase:      c.ValueUpdated - c.ValueInternal,
		}
		if c.ValueInternal > 0 {
			vi.Percent = math.Round(vi.Increase/c.ValueInternal*10000) / 100
		}
		out = append(out, vi)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Increase > out[j].Increase })
	return out
}

type StateBucket struct {
	State string  `json:"state"`
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

// StateDistribution groups by state (blank becomes "Unspecified"), most projects first.
func StateDistribution(ps []domain.Project) []StateBucket {
	idx := map[string]int{}
	out := make([]StateBucket, 0)
	for _, p := range ps {
		name := strings.TrimSpace(p.State)
		if name == "" {
			name = "Unspecified"
		}
		key := strings.ToLower(name)
		i, ok := idx[key]
		if !ok {
			i = len(out)
			idx[key] = i
			out = append(out, StateBucket{State: name})
		}
		out[i].Count++
		out[i].Value += p.Contract.ValueInternal
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].State < out[j].State
	})
	return out
}

// Totals is the financial headline of the dashboard.
type Totals struct {
	Projects           int     `json:"projects"`
	ValueInternal      float64 `json:"valueInternal"`
	ValueUpdated       float64 `json:"valueUpdated"`
	AverageValue       float64 `json:"averageValue"`
	BankGuaranteeValue float64 `json:"bankGuaranteeValue"`
}

func ComputeTotals(ps []domain.Project) Totals {
	t := Totals{Projects: len(ps)}
	for _, p := range ps {
		t.ValueInternal += p.Contract.ValueInternal
		t.ValueUpdated += p.Contract.ValueUpdated
		t.BankGuaranteeValue += p.BankGuarantee.Value
	}
	if t.Projects > 0 {
		t.AverageValue = t.ValueInternal / float64(t.Projects)
	}
	return t
}
