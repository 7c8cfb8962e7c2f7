package model

import (
	"fmt"
	"time"

	"github.com/paiban/erroster/pkg/errors"
)

// Calendar describes the days of the target month and which are "special"
// (weekend or holiday), per §3 of the spec.
type Calendar struct {
	Year  int
	Month time.Month
	Days  int

	holidays map[int]bool
}

// NewCalendar builds a Calendar for (year, month), validating that days
// matches the actual month length.
func NewCalendar(year int, month time.Month, days int, holidayDays []int) (*Calendar, error) {
	want := daysInMonth(year, month)
	if days != want {
		return nil, errors.InvalidInput("days", fmt.Sprintf("%d does not match %04d-%02d (expected %d)", days, year, month, want))
	}
	h := make(map[int]bool, len(holidayDays))
	for _, d := range holidayDays {
		h[d] = true
	}
	return &Calendar{Year: year, Month: month, Days: days, holidays: h}, nil
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Weekday returns 0=Mon..6=Sun for day d (1-indexed).
func (c *Calendar) Weekday(d int) int {
	t := time.Date(c.Year, c.Month, d, 0, 0, 0, 0, time.UTC)
	wd := int(t.Weekday()) // 0=Sun..6=Sat
	return (wd + 6) % 7    // 0=Mon..6=Sun
}

// IsWeekend reports whether day d falls on Saturday or Sunday.
func (c *Calendar) IsWeekend(d int) bool {
	wd := c.Weekday(d)
	return wd == 5 || wd == 6
}

// IsHoliday reports whether day d is listed in the supplied holiday table.
func (c *Calendar) IsHoliday(d int) bool {
	return c.holidays[d]
}

// IsSpecial reports whether day d is a weekend or a holiday (§3).
func (c *Calendar) IsSpecial(d int) bool {
	return c.IsWeekend(d) || c.IsHoliday(d)
}

// WeekOfMonth buckets day d into its 1-indexed week-of-month, grounded on
// original_source/app.py's get_week_occurrence: (day-1)//7 + 1.
func WeekOfMonth(d int) int {
	return (d-1)/7 + 1
}
