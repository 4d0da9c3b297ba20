package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used by source records and the API.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

// DateOnly strips the clock from t, keeping its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Period is an inclusive range of calendar days.
type Period struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// NewPeriod builds a Period normalised to calendar days.
func NewPeriod(start, end time.Time) Period {
	return Period{StartDate: DateOnly(start), EndDate: DateOnly(end)}
}

// Contains reports whether t falls on a day inside the period. Zero times are never contained.
func (p Period) Contains(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	d := DateOnly(t)
	return !d.Before(p.StartDate) && !d.After(p.EndDate)
}

// OnOrBefore reports whether t is set and falls on or before the calendar day of ref.
func OnOrBefore(t, ref time.Time) bool {
	if t.IsZero() {
		return false
	}
	return !DateOnly(t).After(DateOnly(ref))
}
