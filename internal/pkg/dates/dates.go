// Package dates parses the loosely formatted date strings found in project
// records. Blank, "nil" and unparseable values all mean "no date".
package dates

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Day-first layouts come before cast's fallback so 03/04/2025 is 3 April.
var layouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"02-01-2006",
	"2-1-2006",
	"02/01/2006",
	"2/1/2006",
	"02.01.2006",
	"2.1.2006",
	"02-Jan-2006",
	"2-Jan-2006",
	"02-Jan-06",
	"02 Jan 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"02-01-06",
	"02/01/06",
}

var isoInText = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// Spreadsheet exports sometimes carry dates as day serials counted from 1899-12-30.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// IsBlank reports whether s carries no date at all.
func IsBlank(s string) bool {
	t := strings.TrimSpace(s)
	return t == "" || strings.EqualFold(t, "nil")
}

// Parse returns the calendar date in s at local midnight.
func Parse(s string) (time.Time, bool) {
	if IsBlank(s) {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return Midnight(t), true
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n > 20000 && n < 80000 {
		d := excelEpoch.AddDate(0, 0, n)
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local), true
	}
	if t, err := cast.ToTimeInDefaultLocationE(s, time.Local); err == nil {
		return Midnight(t), true
	}
	return time.Time{}, false
}

// FindISODate extracts the first YYYY-MM-DD substring of free text.
func FindISODate(text string) (time.Time, bool) {
	m := isoInText.FindString(text)
	if m == "" {
		return time.Time{}, false
	}
	return Parse(m)
}

// Midnight truncates t to the start of its calendar day in its own location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysUntil counts whole calendar days from now to target; today is 0, yesterday -1.
func DaysUntil(target, now time.Time) int {
	ty, tm, td := target.Date()
	ny, nm, nd := now.Date()
	a := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	b := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return int(math.Ceil(a.Sub(b).Hours() / 24))
}

// DaysUntilString parses s and returns DaysUntil, or false when s has no date.
func DaysUntilString(s string, now time.Time) (int, bool) {
	t, ok := Parse(s)
	if !ok {
		return 0, false
	}
	return DaysUntil(t, now), true
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
