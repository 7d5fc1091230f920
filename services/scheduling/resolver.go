package scheduling

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"brightpath/models"
)

// Layouts tried before falling back to the split-and-reassemble path.
var directLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

var (
	dateSeparators = regexp.MustCompile(`[/\-.]`)
	clockPattern   = regexp.MustCompile(`(?i)^\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\s*$`)
)

// DateTimeResolver converts loosely-formatted date and time text into a
// concrete one-hour interval in its configured location.
type DateTimeResolver struct {
	Location *time.Location
}

func NewDateTimeResolver(loc *time.Location) *DateTimeResolver {
	if loc == nil {
		loc = time.Local
	}
	return &DateTimeResolver{Location: loc}
}

// ResolveDay parses a date string into local midnight of that calendar day.
// Fallback for strings the direct layouts reject: split on / - . and read
// the pieces as month/day/year, coercing 2-digit years into the 2000s.
func (r *DateTimeResolver) ResolveDay(date string) (time.Time, error) {
	trimmed := strings.TrimSpace(date)
	if trimmed == "" {
		return time.Time{}, NewInvalidDateError(date)
	}

	for _, layout := range directLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, r.Location); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.Location), nil
		}
	}

	parts := dateSeparators.Split(trimmed, -1)
	if len(parts) != 3 {
		return time.Time{}, NewInvalidDateError(date)
	}
	month, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	day, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	year, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, NewInvalidDateError(date)
	}
	if year < 100 {
		year += 2000
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, NewInvalidDateError(date)
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, r.Location)
	// time.Date normalizes out-of-range days (e.g. Feb 31); reject those.
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, NewInvalidDateError(date)
	}
	return t, nil
}

// Resolve computes the concrete start/end pair for an appointment request.
// An unusable time string never fails; it degrades to the default
// 10:00-11:00 window.
func (r *DateTimeResolver) Resolve(date, timeStr string) (models.ResolvedInterval, error) {
	day, err := r.ResolveDay(date)
	if err != nil {
		return models.ResolvedInterval{}, err
	}

	hour, minute := 10, 0
	if timeStr != "" {
		if h, m, ok := parseClock(timeStr); ok {
			hour, minute = h, m
		}
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, r.Location)
	return models.ResolvedInterval{Start: start, End: start.Add(time.Hour)}, nil
}

// parseClock matches hour[:minute][am|pm] and converts to 24-hour form:
// 12am maps to 0, 12pm stays 12, pm adds 12 unless the hour is already >= 12.
func parseClock(s string) (hour, minute int, ok bool) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	switch strings.ToLower(m[3]) {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	if hour > 23 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}
