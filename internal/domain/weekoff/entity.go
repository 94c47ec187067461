package weekoff

import (
	"time"
)

type Policy struct {
	ID             string
	AdminID        string
	OrganizationID string
	Name           string
	// Weekdays holds full English weekday names ("Monday".."Sunday").
	Weekdays []string
	// WeekCycle restricts the policy to particular week numbers of the month
	// (1..5, week = (day-1)/7 + 1). Empty means every week.
	WeekCycle []int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppliesOn reports whether the policy marks the given civil date as a
// week-off. Inactive policies never match.
func (p Policy) AppliesOn(date time.Time) bool {
	if !p.IsActive {
		return false
	}

	weekday := date.Weekday().String()
	listed := false
	for _, d := range p.Weekdays {
		if d == weekday {
			listed = true
			break
		}
	}
	if !listed {
		return false
	}

	if len(p.WeekCycle) == 0 {
		return true
	}

	week := WeekOfMonth(date)
	for _, w := range p.WeekCycle {
		if w == week {
			return true
		}
	}
	return false
}

// WeekOfMonth returns the 1-based week number of the date's day of month,
// where days 1-7 are week 1 and days 29-31 land in week 5.
func WeekOfMonth(date time.Time) int {
	return (date.Day()-1)/7 + 1
}
