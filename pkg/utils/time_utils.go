package utils

import (
	"fmt"
	"strings"
	"time"
)

// clockLayouts are tried in order when parsing the visit time extracted from
// free text. Inputs are upper-cased first so the AM/PM layouts match.
var clockLayouts = []string{
	"15:04",
	"15:04:05",
	"3PM",
	"3 PM",
	"3:04PM",
	"3:04 PM",
	"03:04PM",
	"03:04 PM",
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// ParseClockTime parses a wall-clock time from the loosely formatted strings a
// language model tends to produce ("15:00", "3pm", "3:30 PM", ISO timestamps).
func ParseClockTime(raw string) (time.Time, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", raw)
}

// CombineToday places a parsed wall-clock time on today's calendar date,
// truncated to the hour to match the hourly forecast and sensor series.
func CombineToday(clock time.Time) time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), 0, 0, 0, time.Local)
}

// Format12Hour renders a time the way replies must state it, e.g. "3:00 PM".
func Format12Hour(t time.Time) string {
	return t.Format("3:04 PM")
}
