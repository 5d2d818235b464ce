// Package dates provides date parsing and relative-day helpers for display.
//
// Track dates are opaque strings as far as the store is concerned; this
// package only interprets the canonical YYYY-MM-DD form so list output can
// hint at how far away a date is. Nothing here validates or rejects store
// contents.
package dates

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidDate checks if a string is a valid YYYY-MM-DD date.
func IsValidDate(s string) bool {
	if !dateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !IsValidDate(s) {
		return time.Time{}, fmt.Errorf("invalid date: %q", s)
	}
	return time.Parse("2006-01-02", s)
}

// DaysFrom returns the whole-day distance from now to date, ignoring the
// time of day and time zone of both.
func DaysFrom(date, now time.Time) int {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	n := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(n).Hours() / 24)
}

// Describe renders a date's distance from now for humans: "today",
// "tomorrow", "in 3 days", "4 days ago". Values that don't parse as
// YYYY-MM-DD dates yield "".
func Describe(value string, now time.Time) string {
	date, err := ParseDate(value)
	if err != nil {
		return ""
	}

	switch days := DaysFrom(date, now); {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days == -1:
		return "yesterday"
	case days > 1:
		return fmt.Sprintf("in %d days", days)
	default:
		return fmt.Sprintf("%d days ago", -days)
	}
}
