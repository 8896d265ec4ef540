package domain

import "strings"

// CanonicalStatus is the closed set free-text statuses are grouped into.
type CanonicalStatus string

const (
	StatusOngoing   CanonicalStatus = "ongoing"
	StatusCompleted CanonicalStatus = "completed"
	StatusDelayed   CanonicalStatus = "delayed"
	StatusStopped   CanonicalStatus = "stopped"
)

// CanonicalStatuses lists every canonical status in display order.
var CanonicalStatuses = []CanonicalStatus{StatusOngoing, StatusCompleted, StatusDelayed, StatusStopped}

// NormalizeProjectStatus maps free text to a canonical status. First match wins:
// "stop" without "complete" is stopped, then "complete", then the delay markers.
// Anything else, including blank input, is ongoing.
func NormalizeProjectStatus(raw string) CanonicalStatus {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case s == "":
		return StatusOngoing
	case strings.Contains(s, "stop") && !strings.Contains(s, "complete"):
		return StatusStopped
	case strings.Contains(s, "complete"):
		return StatusCompleted
	case strings.Contains(s, "delayed"), strings.Contains(s, "lagging"), strings.Contains(s, "a3"):
		return StatusDelayed
	}
	return StatusOngoing
}

// ParseCanonicalStatus accepts only the four canonical names (case-insensitive).
func ParseCanonicalStatus(s string) (CanonicalStatus, bool) {
	cs := CanonicalStatus(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range CanonicalStatuses {
		if cs == known {
			return cs, true
		}
	}
	return "", false
}
